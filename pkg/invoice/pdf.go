package invoice

import (
	"bytes"
	"fmt"
	"strings"
)

// pdfDoc builds a minimal single-page PDF: one Helvetica text object per
// line, monospaced layout left to the caller. Enough for a printable factura
// without pulling in a rendering engine.
type pdfDoc struct {
	lines []string
}

const (
	pageWidth  = 595 // A4 in points
	pageHeight = 842
	marginX    = 50
	marginTop  = 60
	leading    = 14
	fontSize   = 10
)

func (d *pdfDoc) addLine(line string) {
	d.lines = append(d.lines, line)
}

// escapeText escapes the characters PDF string literals reserve.
func escapeText(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}

// render assembles the PDF byte stream, including the cross-reference table.
func (d *pdfDoc) render() []byte {
	var content bytes.Buffer
	content.WriteString("BT\n")
	fmt.Fprintf(&content, "/F1 %d Tf\n", fontSize)
	fmt.Fprintf(&content, "%d %d Td\n", marginX, pageHeight-marginTop)
	fmt.Fprintf(&content, "%d TL\n", leading)
	for _, line := range d.lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapeText(line))
	}
	content.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
			pageWidth, pageHeight),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart)

	return buf.Bytes()
}
