package formatter

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

const utf8Family = "itinerary"

// BuildPDF renders the list as an A4 document: the heading, then one framed
// block per card holding the key and the monospaced content.
//
// Without a configured UTF-8 font the core fonts are used, which cover only
// cp1252; characters outside it do not render faithfully.
func (rb *ResponseBuilder) BuildPDF(list itinerary.List) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(rb.compressPDF)
	pdf.SetTitle(list.Heading, true)

	headingFont, keyFont, bodyFont := "Helvetica", "Helvetica", "Courier"
	headingStyle, keyStyle := "B", "B"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if rb.pdfFontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", rb.pdfFontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load pdf font %s: %w", rb.pdfFontPath, err)
		}
		headingFont, keyFont, bodyFont = utf8Family, utf8Family, utf8Family
		headingStyle, keyStyle = "", ""
		tr = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(headingFont, headingStyle, 18)
	pdf.Cell(0, 10, tr(list.Heading))
	pdf.Ln(12)

	for _, c := range list.Cards {
		pdf.SetFont(keyFont, keyStyle, 10)
		pdf.MultiCell(0, 6, tr("key: "+c.Key), "LTR", "L", false)
		pdf.SetFont(bodyFont, "", 8)
		pdf.MultiCell(0, 4, tr(c.Content), "LRB", "L", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}
