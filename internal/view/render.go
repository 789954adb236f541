package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	PageTemplate    = "page.html"
	PreviewTemplate = "preview.html"
)

// Notification is a dismissible message shown above the form
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

// FormItem is one editable row of the items table
type FormItem struct {
	Number int
	domain.LineItem
}

// PageData is everything the editor page needs. OpenLink, when set, is
// opened in a new tab as the page loads.
type PageData struct {
	Invoice      domain.Invoice
	Items        []FormItem
	Preview      PreviewModel
	TaxLabel     string
	Notification *Notification
	OpenLink     string
}

// NewPageData builds the page for a snapshot of the invoice
func NewPageData(inv domain.Invoice, note *Notification) PageData {
	items := make([]FormItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = FormItem{Number: i + 1, LineItem: item}
	}
	preview := NewPreview(inv)
	return PageData{
		Invoice:      inv,
		Items:        items,
		Preview:      preview,
		TaxLabel:     preview.TaxLabel,
		Notification: note,
	}
}

// Funcs are the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":    domain.FormatMoney,
		"quantity": domain.FormatQuantity,
		"price": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}
}

// Renderer executes the embedded templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Page renders the full editor page
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.templates.ExecuteTemplate(w, PageTemplate, data)
}

// Preview renders only the preview fragment
func (r *Renderer) Preview(w io.Writer, model PreviewModel) error {
	return r.templates.ExecuteTemplate(w, PreviewTemplate, model)
}
