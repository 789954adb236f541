package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() domain.Invoice {
	inv := domain.Invoice{
		BusinessName: "Acme Networks",
		CustomerName: "Ravi",
		BillNumber:   "INV-42",
		BillDate:     "2024-03-05",
		DueDate:      "not-a-date",
		Items: []domain.LineItem{
			{ID: "a", Description: "Fiber plan", Quantity: 2, Price: 250, Amount: 500},
			{ID: "b", Quantity: 1.5, Price: 10, Amount: 15},
		},
	}
	inv.CalculateTotalDue()
	return inv
}

func TestNewPreviewPlaceholders(t *testing.T) {
	p := NewPreview(domain.Invoice{})

	assert.Equal(t, domain.DefaultBusinessName, p.BusinessName)
	assert.Equal(t, "Your Business Address", p.BusinessAddress)
	assert.Equal(t, "Phone", p.BusinessPhone)
	assert.Equal(t, "Email", p.CustomerEmail)
	assert.Equal(t, "INV-001", p.BillNumber)
	assert.Equal(t, "Customer Name", p.CustomerName)
	assert.Equal(t, "Customer Address", p.CustomerAddress)
	assert.Equal(t, "", p.BillDate)
	assert.Equal(t, "₹0.00", p.Total)
	assert.Equal(t, "Rupees Zero Only", p.AmountInWords)
	assert.Empty(t, p.Items)
}

func TestNewPreviewFormatting(t *testing.T) {
	p := NewPreview(sampleInvoice())

	assert.Equal(t, "Acme Networks", p.BusinessName)
	assert.Equal(t, "05/03/2024", p.BillDate)
	assert.Equal(t, "not-a-date", p.DueDate)
	assert.Equal(t, "Tax (18%)", p.TaxLabel)
	assert.Equal(t, "₹515.00", p.Subtotal)
	assert.Equal(t, "₹92.70", p.Tax)
	assert.Equal(t, "₹607.70", p.Total)
	assert.Equal(t, "Rupees Six Hundred Seven Only", p.AmountInWords)

	require.Len(t, p.Items, 2)
	assert.Equal(t, PreviewItem{ID: "a", Number: 1, Description: "Fiber plan", Quantity: "2", Price: "₹250.00", Amount: "₹500.00"}, p.Items[0])
	assert.Equal(t, "Item Description", p.Items[1].Description)
	assert.Equal(t, "1.5", p.Items[1].Quantity)
}

func TestRenderPreview(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Preview(&buf, NewPreview(sampleInvoice())))
	html := buf.String()

	assert.Contains(t, html, `id="preview"`)
	assert.Contains(t, html, `data-item-id="a"`)
	assert.Contains(t, html, "Fiber plan")
	assert.Contains(t, html, "₹607.70")
	assert.Contains(t, html, "Rupees Six Hundred Seven Only")
	assert.Contains(t, html, "Thank you for your business!")
	assert.NotContains(t, html, "Notes")

	inv := sampleInvoice()
	inv.Notes = "Pay via UPI <script>"
	buf.Reset()
	require.NoError(t, r.Preview(&buf, NewPreview(inv)))
	assert.Contains(t, buf.String(), "Pay via UPI &lt;script&gt;")
}

func TestRenderPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := NewPageData(sampleInvoice(), &Notification{Title: "Invalid Items", Description: "Please add at least one item with a description", Destructive: true})
	require.Len(t, data.Items, 2)
	assert.Equal(t, 2, data.Items[1].Number)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, data))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `name="item.a.description"`)
	assert.Contains(t, html, `value="Fiber plan"`)
	assert.Contains(t, html, `name="item.b.quantity" value="1.5"`)
	assert.Contains(t, html, "toast destructive")
	assert.Contains(t, html, "Invalid Items")
	assert.Contains(t, html, `id="preview"`)
	assert.NotContains(t, html, "window.open(")
}

func TestRenderPageWithOpenLink(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := NewPageData(sampleInvoice(), &Notification{Title: "WhatsApp Opening"})
	data.OpenLink = "https://wa.me/919876543210?text=hi"

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, data))
	assert.Contains(t, buf.String(), `href="https://wa.me/919876543210?text=hi"`)
	assert.Contains(t, buf.String(), "window.open(")
}
