// Package whatsapp turns an invoice into a WhatsApp click-to-chat link.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
)

const (
	// MinNumberDigits is the shortest number, country code included, accepted for export
	MinNumberDigits = 10

	linkBase = "https://wa.me/"
)

// LinkOpener hands a link to whatever can open it. The result is not observed.
type LinkOpener interface {
	Open(ctx context.Context, link string)
}

// LinkOpenerFunc adapts a function to LinkOpener
type LinkOpenerFunc func(ctx context.Context, link string)

// Open calls f(ctx, link)
func (f LinkOpenerFunc) Open(ctx context.Context, link string) { f(ctx, link) }

// Notification is the confirmation shown after a successful export
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result describes a successful export
type Result struct {
	Link         string       `json:"link"`
	Destination  string       `json:"destination"`
	Message      string       `json:"message"`
	Notification Notification `json:"notification"`
}

// Exporter validates invoices and opens their WhatsApp links
type Exporter struct {
	opener LinkOpener
}

// NewExporter creates an exporter. A nil opener only builds links.
func NewExporter(opener LinkOpener) *Exporter {
	return &Exporter{opener: opener}
}

// Prepare validates inv and builds its message and link without opening it
func (x *Exporter) Prepare(inv domain.Invoice) (*Result, error) {
	if err := Validate(inv); err != nil {
		return nil, err
	}

	digits := NormalizeNumber(inv.WhatsAppNumber)
	message := BuildMessage(inv)
	return &Result{
		Link:        BuildLink(digits, message),
		Destination: "+" + digits,
		Message:     message,
		Notification: Notification{
			Title:       "WhatsApp Opening",
			Description: "Sending invoice to +" + digits,
		},
	}, nil
}

// Export validates inv, builds its link and passes it to the opener
func (x *Exporter) Export(ctx context.Context, inv domain.Invoice) (*Result, error) {
	res, err := x.Prepare(inv)
	if err != nil {
		return nil, err
	}
	if x.opener != nil {
		x.opener.Open(ctx, res.Link)
	}
	return res, nil
}

// Validate checks, in order, that the invoice can be sent. The first failure
// is returned as an *ExportError.
func Validate(inv domain.Invoice) error {
	if inv.WhatsAppNumber == "" {
		return errMissingNumber
	}
	if len(NormalizeNumber(inv.WhatsAppNumber)) < MinNumberDigits {
		return errInvalidNumber
	}
	if inv.CustomerName == "" || inv.BillNumber == "" {
		return errMissingInformation
	}
	if len(inv.Items) == 0 {
		return errInvalidItems
	}
	for _, item := range inv.Items {
		if item.Description == "" {
			return errInvalidItems
		}
	}
	return nil
}

// NormalizeNumber strips everything but ASCII digits, which also drops a
// leading "+".
func NormalizeNumber(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink returns the click-to-chat URL for digits with message prefilled
func BuildLink(digits, message string) string {
	return linkBase + digits + "?text=" + encodeComponent(message)
}

// encodeComponent percent-encodes s for a query value, spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildMessage renders the invoice as a WhatsApp message
func BuildMessage(inv domain.Invoice) string {
	business := inv.BusinessName
	if business == "" {
		business = domain.DefaultBusinessName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*INVOICE FROM %s*\n", business)
	fmt.Fprintf(&b, "Invoice #: %s\n", inv.BillNumber)
	fmt.Fprintf(&b, "Date: %s\n\n", inv.BillDate)

	fmt.Fprintf(&b, "*To:* %s\n", inv.CustomerName)
	fmt.Fprintf(&b, "*Amount Due:* %s\n", domain.FormatMoney(inv.Total))
	fmt.Fprintf(&b, "*Due Date:* %s\n\n", inv.DueDate)

	b.WriteString("*Items:*\n")
	for _, item := range inv.Items {
		fmt.Fprintf(&b, "- %s: %s x %s = %s\n",
			item.Description,
			domain.FormatQuantity(item.Quantity),
			domain.FormatMoney(item.Price),
			domain.FormatMoney(item.Amount),
		)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: %s\n", domain.FormatMoney(inv.Subtotal))
	fmt.Fprintf(&b, "Tax: %s\n", domain.FormatMoney(inv.Tax))
	fmt.Fprintf(&b, "Total: %s\n", domain.FormatMoney(inv.Total))

	if strings.TrimSpace(inv.Notes) != "" {
		fmt.Fprintf(&b, "\n*Notes:* %s\n", inv.Notes)
	}

	return b.String()
}
