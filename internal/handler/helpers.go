package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/middleware"
)

// itemFieldPrefix starts every line item form key: item.<id>.<field>
const itemFieldPrefix = "item."

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// sessionEditor returns the caller's editor or answers 500 when the session
// middleware did not run
func sessionEditor(c *gin.Context) (*editor.Editor, bool) {
	ed, ok := middleware.EditorFrom(c)
	if !ok {
		respondInternalServerError(c, ErrNoSession)
		return nil, false
	}
	return ed, true
}

// applyForm diffs the posted form against the current invoice and applies one
// editor operation per changed value. Keys that are absent leave their field
// untouched, and items that no longer exist are ignored.
func applyForm(c *gin.Context, ed *editor.Editor) error {
	if err := c.Request.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	form := c.Request.PostForm
	current := ed.Snapshot()

	for _, field := range domain.Fields {
		values, ok := form[string(field)]
		if !ok || len(values) == 0 {
			continue
		}
		old, _ := current.Get(field)
		if values[0] == old {
			continue
		}
		if err := ed.SetField(field, values[0]); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(form))
	for key := range form {
		if strings.HasPrefix(key, itemFieldPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		id, field, ok := splitItemKey(key)
		if !ok {
			continue
		}
		idx := current.FindItem(id)
		if idx < 0 {
			continue
		}
		value := form.Get(key)
		if !itemChanged(current.Items[idx], field, value) {
			continue
		}
		if err := ed.UpdateLineItem(id, field, value); err != nil {
			return err
		}
	}
	return nil
}

// splitItemKey parses item.<id>.<field>
func splitItemKey(key string) (string, domain.ItemField, bool) {
	rest := strings.TrimPrefix(key, itemFieldPrefix)
	dot := strings.LastIndexByte(rest, '.')
	if dot <= 0 || dot == len(rest)-1 {
		return "", "", false
	}
	return rest[:dot], domain.ItemField(rest[dot+1:]), true
}

func itemChanged(item domain.LineItem, field domain.ItemField, value string) bool {
	switch field {
	case domain.ItemDescription:
		return item.Description != value
	case domain.ItemQuantity:
		return item.Quantity != domain.ParseNumber(value)
	case domain.ItemPrice:
		return item.Price != domain.ParseNumber(value)
	}
	return false
}
