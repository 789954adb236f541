package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const sampleInvoice = `{
  "businessName": "Acme Networks",
  "customerName": "Ravi",
  "whatsappNumber": "+91 98765 43210",
  "billNumber": "INV-9",
  "billDate": "2024-03-05",
  "dueDate": "2024-03-20",
  "items": [{"id": "a", "description": "Fiber plan", "quantity": 2, "price": 250}]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"billing-cli"}, args...))
	return out.String(), err
}

func TestWordsCommand(t *testing.T) {
	out, err := run(t, "", "words", "1234567")
	require.NoError(t, err)
	assert.Equal(t, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven\n", out)

	out, err = run(t, "", "words", "--rupees", "21")
	require.NoError(t, err)
	assert.Equal(t, "Rupees Twenty One Only\n", out)

	_, err = run(t, "", "words", "-5")
	assert.Error(t, err)
}

func TestMessageCommandRecomputesTotals(t *testing.T) {
	out, err := run(t, sampleInvoice, "message", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "*INVOICE FROM Acme Networks*")
	assert.Contains(t, out, "- Fiber plan: 2 x ₹250.00 = ₹500.00")
	assert.Contains(t, out, "Total: ₹590.00")
}

func TestMessageCommandClampsNegativeAmounts(t *testing.T) {
	invoice := strings.Replace(sampleInvoice, `"quantity": 2, "price": 250`, `"quantity": -2, "price": -250`, 1)

	out, err := run(t, invoice, "message", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "- Fiber plan: 0 x ₹0.00 = ₹0.00")
	assert.Contains(t, out, "Total: ₹0.00")
	assert.NotContains(t, out, "-₹")
}

func TestLinkCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvoice), 0o644))

	out, err := run(t, "", "link", "-f", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://wa.me/919876543210?text="))
	assert.NotContains(t, out, "+")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, sampleInvoice, "validate", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = run(t, `{"customerName": "Ravi", "billNumber": "1", "items": []}`, "validate", "--file", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing WhatsApp Number")

	_, err = run(t, `{`, "validate", "--file", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invoice JSON")
}
