package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ridwanfathin/whatsapp-billing/internal/model"
	"github.com/ridwanfathin/whatsapp-billing/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInvoiceStartsSession(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodGet, "/v1/invoice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, app.sessionID)

	inv := decode[model.InvoiceDTO](t, rec)
	assert.Equal(t, app.sessionID, inv.SessionID)
	assert.Equal(t, "Cloud Net Park", inv.BusinessName)
	assert.Equal(t, "2024-03-05", inv.BillDate)
	assert.Equal(t, "2024-03-20", inv.DueDate)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "item-1", inv.Items[0].ID)
	assert.Equal(t, 1.0, inv.Items[0].Quantity)
	assert.Equal(t, 1, app.store.Len())
}

func TestSetField(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodPatch, "/v1/invoice/fields", model.FieldUpdateRequest{Name: "customerName", Value: "Ravi"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ravi", decode[model.InvoiceDTO](t, rec).CustomerName)

	rec = app.json(http.MethodPatch, "/v1/invoice/fields", model.FieldUpdateRequest{Name: "shoeSize", Value: "9"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.json(http.MethodPatch, "/v1/invoice/fields", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLineItemLifecycle(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodPost, "/v1/invoice/items", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	added := decode[model.LineItemResponse](t, rec)
	assert.Equal(t, "item-2", added.Item.ID)
	assert.Len(t, added.Invoice.Items, 2)

	rec = app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "quantity", Value: "2"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "price", Value: "150"})
	require.Equal(t, http.StatusOK, rec.Code)

	inv := decode[model.InvoiceDTO](t, rec)
	assert.InDelta(t, 300, inv.Items[0].Amount, 1e-9)
	assert.InDelta(t, 300, inv.Subtotal, 1e-9)
	assert.InDelta(t, 54, inv.Tax, 1e-9)
	assert.InDelta(t, 354, inv.Total, 1e-9)

	rec = app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "amount", Value: "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.json(http.MethodPatch, "/v1/invoice/items/nope", model.LineItemUpdateRequest{Field: "price", Value: "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.json(http.MethodDelete, "/v1/invoice/items/item-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inv = decode[model.InvoiceDTO](t, rec)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "item-2", inv.Items[0].ID)
	assert.Zero(t, inv.Total)

	rec = app.json(http.MethodDelete, "/v1/invoice/items/item-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecalculateAndReset(t *testing.T) {
	app := newTestApp(t, "")

	app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "price", Value: "100"})
	rec := app.json(http.MethodPost, "/v1/invoice/recalculate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 118, decode[model.InvoiceDTO](t, rec).Total, 1e-9)

	rec = app.json(http.MethodPost, "/v1/invoice/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decode[model.InvoiceDTO](t, rec)
	assert.Zero(t, inv.Total)
	require.Len(t, inv.Items, 1)
	assert.NotEqual(t, "item-1", inv.Items[0].ID)
}

func TestGetPreview(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodGet, "/v1/invoice/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	p := decode[view.PreviewModel](t, rec)
	assert.Equal(t, "Customer Name", p.CustomerName)
	assert.Equal(t, "INV-001", p.BillNumber)
	assert.Equal(t, "05/03/2024", p.BillDate)
	assert.Equal(t, "Rupees Zero Only", p.AmountInWords)
	assert.Empty(t, p.Notes)
}

func TestWhatsAppExport(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodPost, "/v1/invoice/whatsapp", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errResp := decode[model.ErrorResponse](t, rec)
	assert.Equal(t, "Missing WhatsApp Number", errResp.Message)
	assert.Contains(t, errResp.Details, model.ErrorDetail{Field: "kind", Message: "MissingField"})

	for name, value := range map[string]string{
		"whatsappNumber": "+91 98765-43210",
		"customerName":   "Ravi",
		"billNumber":     "INV-9",
	} {
		rec = app.json(http.MethodPatch, "/v1/invoice/fields", model.FieldUpdateRequest{Name: name, Value: value})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = app.json(http.MethodGet, "/v1/invoice/whatsapp", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid Items", decode[model.ErrorResponse](t, rec).Message)

	app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "description", Value: "Fiber plan"})
	app.json(http.MethodPatch, "/v1/invoice/items/item-1", model.LineItemUpdateRequest{Field: "price", Value: "500"})

	rec = app.json(http.MethodPost, "/v1/invoice/whatsapp", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[model.ExportResponse](t, rec)
	assert.True(t, strings.HasPrefix(res.Link, "https://wa.me/919876543210?text="))
	assert.Equal(t, "+919876543210", res.Destination)
	assert.Contains(t, res.Message, "Total: ₹590.00")
	assert.Equal(t, "WhatsApp Opening", res.Notification.Title)
}

func TestGetWords(t *testing.T) {
	app := newTestApp(t, "")

	rec := app.json(http.MethodGet, "/v1/words/1234567", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	words := decode[model.WordsResponse](t, rec)
	assert.Equal(t, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven", words.Words)
	assert.Equal(t, "Rupees Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Only", words.Rupees)

	assert.Equal(t, http.StatusBadRequest, app.json(http.MethodGet, "/v1/words/-4", nil).Code)
	assert.Equal(t, http.StatusBadRequest, app.json(http.MethodGet, "/v1/words/ten", nil).Code)
}
