package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/logger"
	"github.com/ridwanfathin/whatsapp-billing/internal/middleware"
	"github.com/ridwanfathin/whatsapp-billing/internal/model"
	"github.com/ridwanfathin/whatsapp-billing/internal/numwords"
	"github.com/ridwanfathin/whatsapp-billing/internal/view"
	"github.com/ridwanfathin/whatsapp-billing/internal/whatsapp"
	"go.uber.org/zap"
)

// InvoiceHandler serves the JSON API over the caller's editing session
type InvoiceHandler struct {
	exporter *whatsapp.Exporter
	logger   *zap.Logger
}

// NewInvoiceHandler creates a new invoice API handler
func NewInvoiceHandler(logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		exporter: whatsapp.NewExporter(nil),
		logger:   logger,
	}
}

// RegisterRoutes registers the handler's routes with the given router group
func (h *InvoiceHandler) RegisterRoutes(router gin.IRouter) {
	invoice := router.Group("/v1/invoice")
	invoice.GET("", h.GetInvoice)
	invoice.PATCH("/fields", h.SetField)
	invoice.POST("/items", h.AddLineItem)
	invoice.PATCH("/items/:id", h.UpdateLineItem)
	invoice.DELETE("/items/:id", h.RemoveLineItem)
	invoice.POST("/recalculate", h.Recalculate)
	invoice.POST("/reset", h.Reset)
	invoice.GET("/preview", h.GetPreview)
	invoice.GET("/whatsapp", h.PreviewExport)
	invoice.POST("/whatsapp", h.Export)
}

// RegisterPublicRoutes registers the routes that need no session
func (h *InvoiceHandler) RegisterPublicRoutes(router gin.IRouter) {
	router.GET("/v1/words/:number", h.GetWords)
}

// GetInvoice returns the current invoice snapshot
// @Summary Get the invoice
// @Description Returns the invoice of the caller's editing session
// @Tags invoice
// @Produce json
// @Param X-Session-Id header string false "Session id"
// @Success 200 {object} model.InvoiceDTO
// @Router /v1/invoice [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	respondOK(c, h.snapshot(c, ed))
}

// SetField replaces one scalar invoice field
// @Summary Set an invoice field
// @Tags invoice
// @Accept json
// @Produce json
// @Param request body model.FieldUpdateRequest true "Field name and value"
// @Success 200 {object} model.InvoiceDTO
// @Failure 400 {object} model.ErrorResponse
// @Router /v1/invoice/fields [patch]
func (h *InvoiceHandler) SetField(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	var req model.FieldUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	if err := ed.SetField(domain.Field(req.Name), req.Value); err != nil {
		h.respondEditError(c, err, "name")
		return
	}
	respondOK(c, h.snapshot(c, ed))
}

// AddLineItem appends a blank line item
// @Summary Add a line item
// @Tags invoice
// @Produce json
// @Success 201 {object} model.LineItemResponse
// @Router /v1/invoice/items [post]
func (h *InvoiceHandler) AddLineItem(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	item := ed.AddLineItem()
	respondCreated(c, model.LineItemResponse{
		Item:    model.LineItemFromDomain(item),
		Invoice: h.snapshot(c, ed),
	})
}

// UpdateLineItem changes one field of a line item
// @Summary Update a line item
// @Description Quantity and price are parsed leniently; invalid numbers become 0
// @Tags invoice
// @Accept json
// @Produce json
// @Param id path string true "Line item id"
// @Param request body model.LineItemUpdateRequest true "Field and value"
// @Success 200 {object} model.InvoiceDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /v1/invoice/items/{id} [patch]
func (h *InvoiceHandler) UpdateLineItem(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req model.LineItemUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	if ed.Snapshot().FindItem(id) < 0 {
		respondNotFound(c, ErrItemNotFound)
		return
	}
	if err := ed.UpdateLineItem(id, domain.ItemField(req.Field), req.Value); err != nil {
		h.respondEditError(c, err, "field")
		return
	}
	respondOK(c, h.snapshot(c, ed))
}

// RemoveLineItem deletes a line item
// @Summary Remove a line item
// @Tags invoice
// @Produce json
// @Param id path string true "Line item id"
// @Success 200 {object} model.InvoiceDTO
// @Failure 404 {object} model.ErrorResponse
// @Router /v1/invoice/items/{id} [delete]
func (h *InvoiceHandler) RemoveLineItem(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	if !ed.RemoveLineItem(c.Param("id")) {
		respondNotFound(c, ErrItemNotFound)
		return
	}
	respondOK(c, h.snapshot(c, ed))
}

// Recalculate recomputes the invoice totals
// @Summary Recalculate totals
// @Tags invoice
// @Produce json
// @Success 200 {object} model.InvoiceDTO
// @Router /v1/invoice/recalculate [post]
func (h *InvoiceHandler) Recalculate(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	ed.RecomputeTotals()
	respondOK(c, h.snapshot(c, ed))
}

// Reset starts a fresh invoice in the caller's session
// @Summary Reset the invoice
// @Tags invoice
// @Produce json
// @Success 200 {object} model.InvoiceDTO
// @Router /v1/invoice/reset [post]
func (h *InvoiceHandler) Reset(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	ed.Reset()
	h.logger.Info("invoice reset", zap.String("session", logger.MaskLast4(middleware.SessionIDFrom(c))))
	respondOK(c, h.snapshot(c, ed))
}

// GetPreview returns the read-only preview of the invoice
// @Summary Get the invoice preview
// @Description Placeholders, formatted dates and money, amount in words
// @Tags invoice
// @Produce json
// @Success 200 {object} view.PreviewModel
// @Router /v1/invoice/preview [get]
func (h *InvoiceHandler) GetPreview(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	respondOK(c, view.NewPreview(ed.Snapshot()))
}

// PreviewExport validates the invoice and returns its WhatsApp message and link
// @Summary Preview the WhatsApp export
// @Tags whatsapp
// @Produce json
// @Success 200 {object} model.ExportResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /v1/invoice/whatsapp [get]
func (h *InvoiceHandler) PreviewExport(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	res, err := h.exporter.Prepare(ed.Snapshot())
	if err != nil {
		h.respondExportError(c, err)
		return
	}
	respondOK(c, model.ExportFromResult(res))
}

// Export validates the invoice and returns the link to open
// @Summary Export the invoice to WhatsApp
// @Description Returns the wa.me link with the invoice message prefilled
// @Tags whatsapp
// @Produce json
// @Success 200 {object} model.ExportResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /v1/invoice/whatsapp [post]
func (h *InvoiceHandler) Export(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}

	res, err := h.exporter.Export(c.Request.Context(), ed.Snapshot())
	if err != nil {
		h.respondExportError(c, err)
		return
	}

	h.logger.Info("invoice exported",
		zap.String("destination", logger.MaskLast4(res.Destination)),
		zap.Int("message_length", len(res.Message)),
	)
	respondOK(c, model.ExportFromResult(res))
}

// GetWords spells out a whole number in the Indian numbering system
// @Summary Number to words
// @Tags words
// @Produce json
// @Param number path int true "Non-negative whole number"
// @Success 200 {object} model.WordsResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /v1/words/{number} [get]
func (h *InvoiceHandler) GetWords(c *gin.Context) {
	n, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || n < 0 {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("number", "must be a non-negative whole number"))
		return
	}

	respondOK(c, model.WordsResponse{
		Number: n,
		Words:  numwords.Convert(n),
		Rupees: numwords.Rupees(float64(n)),
	})
}

func (h *InvoiceHandler) snapshot(c *gin.Context, ed *editor.Editor) model.InvoiceDTO {
	inv := ed.Snapshot()
	var dto model.InvoiceDTO
	dto.FromDomain(&inv)
	dto.SessionID = middleware.SessionIDFrom(c)
	dto.Version = ed.Version()
	return dto
}

func (h *InvoiceHandler) respondEditError(c *gin.Context, err error, field string) {
	if errors.Is(err, domain.ErrUnknownField) || errors.Is(err, domain.ErrUnknownItemField) {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail(field, err.Error()))
		return
	}
	h.logger.Error("invoice edit failed", zap.Error(err))
	respondInternalServerError(c, ErrInternalServer)
}

func (h *InvoiceHandler) respondExportError(c *gin.Context, err error) {
	exportErr, ok := whatsapp.AsExportError(err)
	if !ok {
		h.logger.Error("invoice export failed", zap.Error(err))
		respondInternalServerError(c, ErrInternalServer)
		return
	}
	respondUnprocessableEntity(c, exportErr.Title,
		newErrorDetail(exportErr.Field, exportErr.Description),
		newErrorDetail("kind", string(exportErr.Kind)),
	)
}
