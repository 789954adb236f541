package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/imageutil"
	"github.com/ridwanfathin/whatsapp-billing/internal/logger"
	"github.com/ridwanfathin/whatsapp-billing/internal/logo"
	"github.com/ridwanfathin/whatsapp-billing/internal/view"
	"github.com/ridwanfathin/whatsapp-billing/internal/whatsapp"
	"go.uber.org/zap"
)

// PageHandler serves the HTML editor, its live preview and the logo checks
type PageHandler struct {
	renderer *view.Renderer
	prober   *logo.Prober
	logger   *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(renderer *view.Renderer, prober *logo.Prober, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		renderer: renderer,
		prober:   prober,
		logger:   logger,
	}
}

// RegisterRoutes registers the handler's routes with the given router group
func (h *PageHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Index)
	router.POST("/", h.Update)
	router.POST("/items", h.AddItem)
	router.POST("/items/:id/delete", h.RemoveItem)
	router.POST("/reset", h.Reset)
	router.POST("/send", h.Send)
	router.GET("/preview", h.Preview)
	router.POST("/preview", h.Preview)
}

// RegisterPublicRoutes registers the logo routes, which need no session
func (h *PageHandler) RegisterPublicRoutes(router gin.IRouter) {
	router.GET("/logo/check", h.CheckLogo)
	router.GET("/logo/thumbnail", h.LogoThumbnail)
}

// Index renders the editor page
func (h *PageHandler) Index(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	h.renderPage(c, http.StatusOK, view.NewPageData(ed.Snapshot(), nil))
}

// Update applies the posted form and redirects back to the editor
func (h *PageHandler) Update(c *gin.Context) {
	h.withForm(c, func(*editor.Editor) {})
}

// AddItem applies the posted form and appends a blank line item
func (h *PageHandler) AddItem(c *gin.Context) {
	h.withForm(c, func(ed *editor.Editor) {
		ed.AddLineItem()
	})
}

// RemoveItem applies the posted form and removes one line item
func (h *PageHandler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	h.withForm(c, func(ed *editor.Editor) {
		ed.RemoveLineItem(id)
	})
}

// Reset discards the invoice and starts a fresh one
func (h *PageHandler) Reset(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	ed.Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

// Send applies the posted form, then exports the invoice to WhatsApp. The
// page comes back with a notification and, on success, the link to open.
func (h *PageHandler) Send(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	if err := applyForm(c, ed); err != nil {
		h.renderFormError(c, ed, err)
		return
	}

	var opened string
	exporter := whatsapp.NewExporter(whatsapp.LinkOpenerFunc(func(_ context.Context, link string) {
		opened = link
	}))

	inv := ed.Snapshot()
	res, err := exporter.Export(c.Request.Context(), inv)
	if err != nil {
		exportErr, ok := whatsapp.AsExportError(err)
		if !ok {
			h.logger.Error("invoice export failed", zap.Error(err))
			h.renderPage(c, http.StatusInternalServerError, view.NewPageData(inv, &view.Notification{
				Title:       "Export Failed",
				Description: ErrInternalServer,
				Destructive: true,
			}))
			return
		}
		h.renderPage(c, http.StatusUnprocessableEntity, view.NewPageData(inv, &view.Notification{
			Title:       exportErr.Title,
			Description: exportErr.Description,
			Destructive: true,
		}))
		return
	}

	h.logger.Info("invoice exported",
		zap.String("destination", logger.MaskLast4(res.Destination)),
		zap.Int("items", len(inv.Items)),
	)

	data := view.NewPageData(inv, &view.Notification{
		Title:       res.Notification.Title,
		Description: res.Notification.Description,
	})
	data.OpenLink = opened
	h.renderPage(c, http.StatusOK, data)
}

// Preview renders only the preview fragment. A POST applies the form first.
func (h *PageHandler) Preview(c *gin.Context) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	if c.Request.Method == http.MethodPost {
		if err := applyForm(c, ed); err != nil {
			respondBadRequest(c, ErrInvalidInput, newErrorDetail("form", err.Error()))
			return
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.Preview(&buf, view.NewPreview(ed.Snapshot())); err != nil {
		h.logger.Error("failed to render preview", zap.Error(err))
		respondInternalServerError(c, ErrRenderFailed)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// CheckLogo reports whether a logo URL loads as an image
// @Summary Check a logo URL
// @Tags logo
// @Produce json
// @Param url query string true "Logo URL, http(s) or a path under the static directory"
// @Success 200 {object} logo.Result
// @Router /logo/check [get]
func (h *PageHandler) CheckLogo(c *gin.Context) {
	res := h.prober.Check(c.Request.Context(), c.Query("url"))
	if !res.Valid {
		h.logger.Debug("logo check failed", zap.String("url", res.URL), zap.String("reason", res.Reason))
	}
	respondOK(c, res)
}

// LogoThumbnail returns the logo fitted into a square as PNG
// @Summary Logo thumbnail
// @Tags logo
// @Produce png
// @Param url query string true "Logo URL"
// @Param size query int false "Longest side in pixels" default(128)
// @Success 200 {file} binary
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /logo/thumbnail [get]
func (h *PageHandler) LogoThumbnail(c *gin.Context) {
	size, err := getQueryInt(c, "size", imageutil.DefaultMaxDimension)
	if err != nil || size < 1 || size > 1024 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("size", "must be between 1 and 1024"))
		return
	}

	data, err := h.prober.Thumbnail(c.Request.Context(), c.Query("url"), size)
	if err != nil {
		if errors.Is(err, logo.ErrEmptySource) || errors.Is(err, logo.ErrUnsupportedSource) {
			respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("url", err.Error()))
			return
		}
		respondUnprocessableEntity(c, ErrLogoUnavailable, newErrorDetail("url", err.Error()))
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/png", data)
}

// withForm applies the posted form, runs then and redirects to the editor
func (h *PageHandler) withForm(c *gin.Context, then func(*editor.Editor)) {
	ed, ok := sessionEditor(c)
	if !ok {
		return
	}
	if err := applyForm(c, ed); err != nil {
		h.renderFormError(c, ed, err)
		return
	}
	then(ed)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) renderFormError(c *gin.Context, ed *editor.Editor, err error) {
	h.logger.Warn("rejected form", zap.Error(err))
	h.renderPage(c, http.StatusBadRequest, view.NewPageData(ed.Snapshot(), &view.Notification{
		Title:       "Invalid Form",
		Description: err.Error(),
		Destructive: true,
	}))
}

// renderPage buffers the page so a template error becomes a clean 500
func (h *PageHandler) renderPage(c *gin.Context, status int, data view.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		respondInternalServerError(c, ErrRenderFailed)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
