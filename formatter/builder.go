package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

// ErrUnknownFormat is returned for output formats the builder cannot produce
var ErrUnknownFormat = errors.New("unknown format")

// Format is an output format of the itinerary list
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a format name or file extension to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the HTTP content type of f
func ContentType(f Format) string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// ResponseBuilder renders itinerary lists. It holds no per-call state and is
// safe for concurrent use.
type ResponseBuilder struct {
	compressPDF bool
	pdfFontPath string
}

// NewResponseBuilder creates a new response builder for rendering itinerary lists
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{compressPDF: true}
}

// WithPDFFont returns a copy of rb that renders PDFs with the UTF-8 TrueType
// font at path. An empty path keeps the built-in cp1252 fonts.
func (rb *ResponseBuilder) WithPDFFont(path string) *ResponseBuilder {
	c := *rb
	c.pdfFontPath = path
	return &c
}

// Build renders list in format f
func (rb *ResponseBuilder) Build(list itinerary.List, f Format) ([]byte, error) {
	switch f {
	case FormatHTML:
		return rb.BuildHTML(list)
	case FormatJSON:
		return rb.BuildJSON(list), nil
	case FormatText:
		return []byte(rb.BuildText(list)), nil
	case FormatPDF:
		return rb.BuildPDF(list)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
