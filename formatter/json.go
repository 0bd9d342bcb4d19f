package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

type listPayload struct {
	Heading string        `json:"heading"`
	Width   string        `json:"width"`
	Cards   []cardPayload `json:"cards"`
}

type cardPayload struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

// BuildJSON serializes an itinerary list to JSON
func (rb *ResponseBuilder) BuildJSON(list itinerary.List) []byte {
	payload := listPayload{
		Heading: list.Heading,
		Width:   list.Width,
		Cards:   make([]cardPayload, 0, len(list.Cards)),
	}
	for _, c := range list.Cards {
		payload.Cards = append(payload.Cards, cardPayload{Key: c.Key, Content: c.Content})
	}
	b, _ := json.Marshal(payload)
	return b
}
