package whatsapp

import (
	"errors"
	"fmt"
)

// Kind classifies why an export was refused
type Kind string

const (
	// KindMissingField means a required field is empty
	KindMissingField Kind = "MissingField"
	// KindInvalidFormat means the WhatsApp number is too short
	KindInvalidFormat Kind = "InvalidFormat"
	// KindEmptyCollection means there are no items or an item has no description
	KindEmptyCollection Kind = "EmptyCollection"
)

// ExportError is a user-facing validation failure. Title and Description
// are shown as a dismissible notification.
type ExportError struct {
	Kind        Kind
	Field       string
	Title       string
	Description string
}

// Error returns a string representation of the error
func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Description)
}

// AsExportError unwraps err into an *ExportError if it holds one
func AsExportError(err error) (*ExportError, bool) {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr, true
	}
	return nil, false
}

var (
	errMissingNumber = &ExportError{
		Kind:        KindMissingField,
		Field:       "whatsappNumber",
		Title:       "Missing WhatsApp Number",
		Description: "Please enter the customer's WhatsApp number",
	}
	errInvalidNumber = &ExportError{
		Kind:        KindInvalidFormat,
		Field:       "whatsappNumber",
		Title:       "Invalid WhatsApp Number",
		Description: "Please enter a valid WhatsApp number with country code",
	}
	errMissingInformation = &ExportError{
		Kind:        KindMissingField,
		Field:       "customerName,billNumber",
		Title:       "Missing Information",
		Description: "Please fill in customer name and bill number",
	}
	errInvalidItems = &ExportError{
		Kind:        KindEmptyCollection,
		Field:       "items",
		Title:       "Invalid Items",
		Description: "Please add at least one item with a description",
	}
)
