// Package itinerary builds the itinerary list view model from a trip query
// result: a heading followed by one card per itinerary pattern.
//
// Each card is keyed by the identifiers of its pattern's legs joined with an
// underscore, and its content is the pattern serialised as indented JSON.
// Rendering the model to HTML, JSON, terminal text or PDF is done by the
// formatter package.
package itinerary
