// Package formatter renders the itinerary list view model.
//
// This package is organized into:
// - builder.go: ResponseBuilder, output formats and dispatch
// - html.go: HTML section rendered from the embedded template
// - json.go: JSON serialization
// - text.go: terminal rendering with bordered cards
// - pdf.go: printable A4 document
package formatter
