package invoice_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dromero-dev/comanda-api/pkg/invoice"
)

func sampleInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		BusinessName:  "La Esquina",
		SaleNo:        "VTA-AB12CD34",
		OrderNo:       "1042",
		Date:          "2025-03-14",
		ClientName:    "Laura",
		TableName:     "Mesa 3",
		PaymentMethod: "efectivo",
		Lines: []invoice.Line{
			{Name: "Bandeja paisa", Quantity: 1, UnitPrice: 32000, Total: 32000},
			{Name: "Limonada", Quantity: 2, UnitPrice: 5000, Total: 10000},
		},
		Total:  42000,
		Paid:   50000,
		Change: 8000,
	}
}

func TestFilenameDerivedFromOrder(t *testing.T) {
	assert.Equal(t, "factura-1042.pdf", sampleInvoice().Filename())
}

func TestRenderProducesPDF(t *testing.T) {
	data := sampleInvoice().Render()
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-1.4", string(data[:8]))
	assert.Contains(t, string(data), "Pedido #1042")
	assert.Contains(t, string(data), "%%EOF")
}

func TestRenderBase64RoundTrips(t *testing.T) {
	inv := sampleInvoice()
	decoded, err := base64.StdEncoding.DecodeString(inv.RenderBase64())
	require.NoError(t, err)
	assert.Equal(t, inv.Render(), decoded)
}
