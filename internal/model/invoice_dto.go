package model

import (
	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/whatsapp"
)

// LineItemDTO represents a single item in an invoice for data transfer
type LineItemDTO struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// InvoiceDTO is the JSON view of an editing session
type InvoiceDTO struct {
	SessionID       string        `json:"sessionId"`
	Version         uint64        `json:"version"`
	BusinessName    string        `json:"businessName"`
	BusinessAddress string        `json:"businessAddress"`
	BusinessPhone   string        `json:"businessPhone"`
	BusinessEmail   string        `json:"businessEmail"`
	CustomerName    string        `json:"customerName"`
	CustomerAddress string        `json:"customerAddress"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail"`
	WhatsAppNumber  string        `json:"whatsappNumber"`
	BillNumber      string        `json:"billNumber"`
	BillDate        string        `json:"billDate"` // Format: YYYY-MM-DD
	DueDate         string        `json:"dueDate"`  // Format: YYYY-MM-DD
	Notes           string        `json:"notes"`
	LogoURL         string        `json:"logoUrl"`
	Items           []LineItemDTO `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	TaxRatePercent  float64       `json:"taxRatePercent"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
}

// FieldUpdateRequest sets one scalar invoice field
type FieldUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// LineItemUpdateRequest sets one field of a line item
type LineItemUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// LineItemResponse wraps a newly added line item
type LineItemResponse struct {
	Item    LineItemDTO `json:"item"`
	Invoice InvoiceDTO  `json:"invoice"`
}

// WordsResponse is the spelled-out form of a number
type WordsResponse struct {
	Number int64  `json:"number"`
	Words  string `json:"words"`
	Rupees string `json:"rupees"`
}

// ExportResponse describes a WhatsApp export
type ExportResponse struct {
	Link         string                `json:"link"`
	Destination  string                `json:"destination"`
	Message      string                `json:"message"`
	Notification whatsapp.Notification `json:"notification"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// FromDomain converts a domain Invoice to an InvoiceDTO
func (dto *InvoiceDTO) FromDomain(invoice *domain.Invoice) {
	dto.BusinessName = invoice.BusinessName
	dto.BusinessAddress = invoice.BusinessAddress
	dto.BusinessPhone = invoice.BusinessPhone
	dto.BusinessEmail = invoice.BusinessEmail
	dto.CustomerName = invoice.CustomerName
	dto.CustomerAddress = invoice.CustomerAddress
	dto.CustomerPhone = invoice.CustomerPhone
	dto.CustomerEmail = invoice.CustomerEmail
	dto.WhatsAppNumber = invoice.WhatsAppNumber
	dto.BillNumber = invoice.BillNumber
	dto.BillDate = invoice.BillDate
	dto.DueDate = invoice.DueDate
	dto.Notes = invoice.Notes
	dto.LogoURL = invoice.LogoURL
	dto.Subtotal = invoice.Subtotal
	dto.TaxRatePercent = domain.TaxRate * 100
	dto.Tax = invoice.Tax
	dto.Total = invoice.Total

	// Convert line items
	dto.Items = make([]LineItemDTO, len(invoice.Items))
	for i, item := range invoice.Items {
		dto.Items[i] = LineItemFromDomain(item)
	}
}

// LineItemFromDomain converts a domain LineItem to its DTO
func LineItemFromDomain(item domain.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Amount:      item.Amount,
	}
}

// ToDomain converts the DTO back into a domain Invoice. Totals are copied
// as-is; callers recompute them when they need consistency.
func (dto *InvoiceDTO) ToDomain() domain.Invoice {
	inv := domain.Invoice{
		BusinessName:    dto.BusinessName,
		BusinessAddress: dto.BusinessAddress,
		BusinessPhone:   dto.BusinessPhone,
		BusinessEmail:   dto.BusinessEmail,
		CustomerName:    dto.CustomerName,
		CustomerAddress: dto.CustomerAddress,
		CustomerPhone:   dto.CustomerPhone,
		CustomerEmail:   dto.CustomerEmail,
		WhatsAppNumber:  dto.WhatsAppNumber,
		BillNumber:      dto.BillNumber,
		BillDate:        dto.BillDate,
		DueDate:         dto.DueDate,
		Notes:           dto.Notes,
		LogoURL:         dto.LogoURL,
		Items:           make([]domain.LineItem, len(dto.Items)),
		Subtotal:        dto.Subtotal,
		Tax:             dto.Tax,
		Total:           dto.Total,
	}
	for i, item := range dto.Items {
		inv.Items[i] = domain.LineItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Amount:      item.Amount,
		}
	}
	return inv
}

// ExportFromResult converts an export result to its response
func ExportFromResult(res *whatsapp.Result) ExportResponse {
	return ExportResponse{
		Link:         res.Link,
		Destination:  res.Destination,
		Message:      res.Message,
		Notification: res.Notification,
	}
}
