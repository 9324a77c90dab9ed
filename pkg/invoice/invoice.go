// Package invoice renders a sale into a downloadable factura. The document is
// produced server-side and shipped to the client as a base64 payload; the
// artifact name is derived from the order identifier so repeated downloads of
// the same order overwrite each other.
package invoice

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Line is a single billed line on the invoice.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// Invoice is a value object composed from order and sale data at download
// time; it is not persisted.
type Invoice struct {
	BusinessName  string
	SaleNo        string
	OrderNo       string
	Date          string
	ClientName    string
	TableName     string
	PaymentMethod string
	Lines         []Line
	DeliveryFee   float64
	Discount      float64
	Total         float64
	Paid          float64
	Change        float64
}

// Filename is the deterministic download name for the artifact.
func (inv *Invoice) Filename() string {
	return fmt.Sprintf("factura-%s.pdf", inv.OrderNo)
}

const lineWidth = 72

func row(left, right string) string {
	pad := lineWidth - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Render produces the PDF bytes for the invoice.
func (inv *Invoice) Render() []byte {
	doc := &pdfDoc{}

	doc.addLine(inv.BusinessName)
	doc.addLine(strings.Repeat("=", lineWidth))
	doc.addLine(row("Factura "+inv.SaleNo, inv.Date))
	doc.addLine("Pedido #" + inv.OrderNo)
	if inv.ClientName != "" {
		doc.addLine("Cliente: " + inv.ClientName)
	}
	if inv.TableName != "" {
		doc.addLine("Mesa: " + inv.TableName)
	}
	doc.addLine(strings.Repeat("-", lineWidth))

	for _, l := range inv.Lines {
		doc.addLine(row(fmt.Sprintf("%dx %s", l.Quantity, l.Name), money(l.Total)))
	}

	doc.addLine(strings.Repeat("-", lineWidth))
	if inv.DeliveryFee > 0 {
		doc.addLine(row("Domicilio", money(inv.DeliveryFee)))
	}
	if inv.Discount > 0 {
		doc.addLine(row("Descuento", "-"+money(inv.Discount)))
	}
	doc.addLine(row("TOTAL", money(inv.Total)))
	doc.addLine(row("Pago ("+inv.PaymentMethod+")", money(inv.Paid)))
	if inv.Change > 0 {
		doc.addLine(row("Cambio", money(inv.Change)))
	}

	return doc.render()
}

// RenderBase64 renders the invoice and encodes it for transport.
func (inv *Invoice) RenderBase64() string {
	return base64.StdEncoding.EncodeToString(inv.Render())
}
