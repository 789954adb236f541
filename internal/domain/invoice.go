package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// TaxRate is the fixed GST surcharge applied to the subtotal.
	TaxRate = 0.18

	// DefaultBusinessName is used for new invoices and for exports with a blank business name.
	DefaultBusinessName = "Cloud Net Park"

	// DefaultLogoURL points at the bundled logo in the static directory.
	DefaultLogoURL = "/CNP.jpg"

	// DefaultDueDays is the gap between bill date and due date on a new invoice.
	DefaultDueDays = 15

	// DateLayout is the storage format of bill and due dates.
	DateLayout = "2006-01-02"

	// DisplayDateLayout is the preview format of bill and due dates.
	DisplayDateLayout = "02/01/2006"

	// CurrencySymbol prefixes every rendered amount.
	CurrencySymbol = "₹"
)

var (
	// ErrUnknownField is returned when a scalar field name is not part of the invoice.
	ErrUnknownField = errors.New("unknown invoice field")

	// ErrUnknownItemField is returned when a line item field name is not editable.
	ErrUnknownItemField = errors.New("unknown line item field")
)

// Field names a scalar invoice field. The names double as form and JSON keys.
type Field string

const (
	FieldBusinessName    Field = "businessName"
	FieldBusinessAddress Field = "businessAddress"
	FieldBusinessPhone   Field = "businessPhone"
	FieldBusinessEmail   Field = "businessEmail"
	FieldCustomerName    Field = "customerName"
	FieldCustomerAddress Field = "customerAddress"
	FieldCustomerPhone   Field = "customerPhone"
	FieldCustomerEmail   Field = "customerEmail"
	FieldWhatsAppNumber  Field = "whatsappNumber"
	FieldBillNumber      Field = "billNumber"
	FieldBillDate        Field = "billDate"
	FieldDueDate         Field = "dueDate"
	FieldNotes           Field = "notes"
	FieldLogoURL         Field = "logoUrl"
)

// Fields lists every scalar field in form order.
var Fields = []Field{
	FieldBusinessName, FieldBusinessAddress, FieldBusinessPhone, FieldBusinessEmail,
	FieldBillNumber, FieldBillDate, FieldDueDate,
	FieldCustomerName, FieldCustomerAddress, FieldCustomerPhone, FieldCustomerEmail,
	FieldWhatsAppNumber, FieldNotes, FieldLogoURL,
}

// ItemField names an editable line item field. Amount is derived and never edited.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemQuantity    ItemField = "quantity"
	ItemPrice       ItemField = "price"
)

// LineItem represents a single billable row of an invoice
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// NewLineItem creates a blank line item with quantity 1
func NewLineItem(id string) LineItem {
	return LineItem{ID: id, Quantity: 1}
}

// With returns a copy of the item with field set to value. Quantity and price
// are coerced with ParseNumber and the amount is recomputed.
func (l LineItem) With(field ItemField, value string) (LineItem, error) {
	switch field {
	case ItemDescription:
		l.Description = value
		return l, nil
	case ItemQuantity:
		l.Quantity = ParseNumber(value)
	case ItemPrice:
		l.Price = ParseNumber(value)
	default:
		return l, fmt.Errorf("%w: %q", ErrUnknownItemField, field)
	}
	l.CalculateAmount()
	return l, nil
}

// CalculateAmount recalculates the amount from quantity and price
func (l *LineItem) CalculateAmount() {
	l.Amount = l.Quantity * l.Price
}

// Invoice represents the invoice being edited
type Invoice struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`

	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	WhatsAppNumber  string `json:"whatsappNumber"`

	BillNumber string `json:"billNumber"`
	BillDate   string `json:"billDate"` // Format: YYYY-MM-DD
	DueDate    string `json:"dueDate"`  // Format: YYYY-MM-DD
	Notes      string `json:"notes"`
	LogoURL    string `json:"logoUrl"`

	Items []LineItem `json:"items"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Defaults holds the values a new invoice starts from
type Defaults struct {
	BusinessName string
	DueDays      int
	LogoURL      string
}

// NewInvoice creates an invoice dated today with a single blank line item
func NewInvoice(today time.Time, defaults Defaults, itemID string) Invoice {
	if defaults.BusinessName == "" {
		defaults.BusinessName = DefaultBusinessName
	}
	if defaults.DueDays <= 0 {
		defaults.DueDays = DefaultDueDays
	}
	if defaults.LogoURL == "" {
		defaults.LogoURL = DefaultLogoURL
	}

	inv := Invoice{
		BusinessName: defaults.BusinessName,
		BillDate:     today.Format(DateLayout),
		DueDate:      today.AddDate(0, 0, defaults.DueDays).Format(DateLayout),
		LogoURL:      defaults.LogoURL,
		Items:        []LineItem{NewLineItem(itemID)},
	}
	inv.CalculateTotalDue()
	return inv
}

// Get returns the value of a scalar field
func (i Invoice) Get(field Field) (string, error) {
	if p := i.fieldPtr(field); p != nil {
		return *p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// With returns a copy of the invoice with one scalar field overwritten. The
// item slice is shared with the receiver.
func (i Invoice) With(field Field, value string) (Invoice, error) {
	p := i.fieldPtr(field)
	if p == nil {
		return i, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	*p = value
	return i, nil
}

func (i *Invoice) fieldPtr(field Field) *string {
	switch field {
	case FieldBusinessName:
		return &i.BusinessName
	case FieldBusinessAddress:
		return &i.BusinessAddress
	case FieldBusinessPhone:
		return &i.BusinessPhone
	case FieldBusinessEmail:
		return &i.BusinessEmail
	case FieldCustomerName:
		return &i.CustomerName
	case FieldCustomerAddress:
		return &i.CustomerAddress
	case FieldCustomerPhone:
		return &i.CustomerPhone
	case FieldCustomerEmail:
		return &i.CustomerEmail
	case FieldWhatsAppNumber:
		return &i.WhatsAppNumber
	case FieldBillNumber:
		return &i.BillNumber
	case FieldBillDate:
		return &i.BillDate
	case FieldDueDate:
		return &i.DueDate
	case FieldNotes:
		return &i.Notes
	case FieldLogoURL:
		return &i.LogoURL
	}
	return nil
}

// FindItem returns the position of the item with the given id, or -1
func (i Invoice) FindItem(id string) int {
	for idx, item := range i.Items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}

// Clone returns a copy that shares nothing mutable with the receiver
func (i Invoice) Clone() Invoice {
	i.Items = append([]LineItem(nil), i.Items...)
	if i.Items == nil {
		i.Items = []LineItem{}
	}
	return i
}

// CalculateSubtotal recalculates the subtotal based on line items
func (i *Invoice) CalculateSubtotal() {
	var subtotal float64
	for _, item := range i.Items {
		subtotal += item.Amount
	}
	i.Subtotal = subtotal
}

// CalculateTaxAmount calculates the tax amount at the fixed rate
func (i *Invoice) CalculateTaxAmount() {
	i.Tax = i.Subtotal * TaxRate
}

// CalculateTotalDue calculates subtotal, tax and total
func (i *Invoice) CalculateTotalDue() {
	i.CalculateSubtotal()
	i.CalculateTaxAmount()
	i.Total = i.Subtotal + i.Tax
}

// ParseNumber reads a quantity or price. Anything that is not a finite,
// non-negative number becomes 0.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatMoney renders an amount with the currency symbol and two decimals
func FormatMoney(v float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, v)
}

// FormatQuantity renders a quantity in its shortest form (2, 1.5)
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatDisplayDate turns YYYY-MM-DD into DD/MM/YYYY, returning the input
// unchanged when it does not parse.
func FormatDisplayDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}
