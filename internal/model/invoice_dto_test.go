package model

import (
	"testing"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceDTOFromDomain(t *testing.T) {
	inv := domain.Invoice{
		BusinessName:   "Acme",
		CustomerName:   "Ravi",
		WhatsAppNumber: "+91 98765 43210",
		BillNumber:     "INV-7",
		BillDate:       "2024-03-05",
		Items: []domain.LineItem{
			{ID: "a", Description: "Router", Quantity: 2, Price: 150, Amount: 300},
		},
		Subtotal: 300,
		Tax:      54,
		Total:    354,
	}

	var dto InvoiceDTO
	dto.FromDomain(&inv)

	assert.Equal(t, "Acme", dto.BusinessName)
	assert.Equal(t, "+91 98765 43210", dto.WhatsAppNumber)
	assert.Equal(t, 18.0, dto.TaxRatePercent)
	assert.Len(t, dto.Items, 1)
	assert.Equal(t, "a", dto.Items[0].ID)
	assert.Equal(t, 300.0, dto.Items[0].Amount)

	back := dto.ToDomain()
	assert.Equal(t, inv, back)
}

func TestInvoiceDTOFromDomainEmptyItems(t *testing.T) {
	var dto InvoiceDTO
	dto.FromDomain(&domain.Invoice{})

	assert.NotNil(t, dto.Items)
	assert.Empty(t, dto.Items)
}
