// Package view renders the editor form and the read-only invoice preview.
package view

import (
	"fmt"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/numwords"
)

// Placeholders shown in the preview while a field is blank
const (
	placeholderBusinessAddress = "Your Business Address"
	placeholderPhone           = "Phone"
	placeholderEmail           = "Email"
	placeholderBillNumber      = "INV-001"
	placeholderCustomerName    = "Customer Name"
	placeholderCustomerAddress = "Customer Address"
	placeholderDescription     = "Item Description"
)

// PreviewItem is one row of the preview items table
type PreviewItem struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
}

// PreviewModel is the read-only rendition of an invoice
type PreviewModel struct {
	LogoURL         string        `json:"logoUrl"`
	BusinessName    string        `json:"businessName"`
	BusinessAddress string        `json:"businessAddress"`
	BusinessPhone   string        `json:"businessPhone"`
	BusinessEmail   string        `json:"businessEmail"`
	BillNumber      string        `json:"billNumber"`
	BillDate        string        `json:"billDate"`
	DueDate         string        `json:"dueDate"`
	CustomerName    string        `json:"customerName"`
	CustomerAddress string        `json:"customerAddress"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail"`
	Items           []PreviewItem `json:"items"`
	Subtotal        string        `json:"subtotal"`
	TaxLabel        string        `json:"taxLabel"`
	Tax             string        `json:"tax"`
	Total           string        `json:"total"`
	AmountInWords   string        `json:"amountInWords"`
	Notes           string        `json:"notes,omitempty"`
}

// NewPreview projects an invoice into its preview
func NewPreview(inv domain.Invoice) PreviewModel {
	p := PreviewModel{
		LogoURL:         inv.LogoURL,
		BusinessName:    orDefault(inv.BusinessName, domain.DefaultBusinessName),
		BusinessAddress: orDefault(inv.BusinessAddress, placeholderBusinessAddress),
		BusinessPhone:   orDefault(inv.BusinessPhone, placeholderPhone),
		BusinessEmail:   orDefault(inv.BusinessEmail, placeholderEmail),
		BillNumber:      orDefault(inv.BillNumber, placeholderBillNumber),
		BillDate:        domain.FormatDisplayDate(inv.BillDate),
		DueDate:         domain.FormatDisplayDate(inv.DueDate),
		CustomerName:    orDefault(inv.CustomerName, placeholderCustomerName),
		CustomerAddress: orDefault(inv.CustomerAddress, placeholderCustomerAddress),
		CustomerPhone:   orDefault(inv.CustomerPhone, placeholderPhone),
		CustomerEmail:   orDefault(inv.CustomerEmail, placeholderEmail),
		Items:           make([]PreviewItem, 0, len(inv.Items)),
		Subtotal:        domain.FormatMoney(inv.Subtotal),
		TaxLabel:        fmt.Sprintf("Tax (%g%%)", domain.TaxRate*100),
		Tax:             domain.FormatMoney(inv.Tax),
		Total:           domain.FormatMoney(inv.Total),
		AmountInWords:   numwords.Rupees(inv.Total),
		Notes:           inv.Notes,
	}

	for i, item := range inv.Items {
		p.Items = append(p.Items, PreviewItem{
			ID:          item.ID,
			Number:      i + 1,
			Description: orDefault(item.Description, placeholderDescription),
			Quantity:    domain.FormatQuantity(item.Quantity),
			Price:       domain.FormatMoney(item.Price),
			Amount:      domain.FormatMoney(item.Amount),
		})
	}

	return p
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
