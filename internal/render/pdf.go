package render

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/platoconv/internal/transcript"
)

// WritePDF renders a conversation to a simple PDF at outPath, one paragraph
// per turn with the speaker name in bold. Layout is intentionally minimal.
func WritePDF(msgs transcript.Conversation, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	for _, m := range msgs {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, m.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, m.Content, "", "L", false)
		pdf.Ln(4)
	}

	return pdf.OutputFileAndClose(outPath)
}
