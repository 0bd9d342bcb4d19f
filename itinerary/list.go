package itinerary

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/theoremus-urban-solutions/itinerary-view/tripquery"
)

const (
	// DefaultHeading is the section heading used when Options.Heading is empty
	DefaultHeading = "Itineraries"
	// DefaultWidth is the section CSS width used when Options.Width is empty
	DefaultWidth = "36rem"

	keySeparator = "_"
	indent       = "  "
)

// Options controls the presentation of the list
type Options struct {
	Heading string
	Width   string
}

// List is the view model of the itinerary list
type List struct {
	Heading string
	Width   string
	Cards   []Card
}

// Card is one rendered itinerary pattern
type Card struct {
	Key     string
	Content string
}

// BuildList produces the list for result. A nil result yields the heading and no cards.
func BuildList(result *tripquery.TripQuery, opts Options) List {
	list := List{
		Heading: opts.Heading,
		Width:   opts.Width,
	}
	if list.Heading == "" {
		list.Heading = DefaultHeading
	}
	if list.Width == "" {
		list.Width = DefaultWidth
	}

	patterns := result.Patterns()
	if len(patterns) == 0 {
		return list
	}

	list.Cards = make([]Card, 0, len(patterns))
	for _, p := range patterns {
		list.Cards = append(list.Cards, Card{
			Key:     CardKey(p),
			Content: CardContent(p),
		})
	}
	return list
}

// CardKey joins the pattern's leg identifiers with an underscore.
// Null identifiers contribute an empty segment.
func CardKey(p tripquery.TripPattern) string {
	ids := make([]string, len(p.Legs))
	for i, leg := range p.Legs {
		ids[i] = leg.LegID()
	}
	return strings.Join(ids, keySeparator)
}

// CardContent serialises the pattern as JSON indented by two spaces. A decoded
// pattern is dumped from the bytes it was received as.
func CardContent(p tripquery.TripPattern) string {
	var buf bytes.Buffer
	if len(p.Raw) > 0 {
		if err := json.Indent(&buf, p.Raw, "", indent); err == nil {
			return buf.String()
		}
		buf.Reset()
	}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	// TripPattern holds only strings, numbers, bools and pointers to them
	_ = enc.Encode(p)
	return strings.TrimSuffix(buf.String(), "\n")
}
