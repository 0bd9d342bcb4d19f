package tripquery

import "encoding/json"

// TripQuery is the result of the OTP `trip` query
type TripQuery struct {
	Trip *Trip `json:"trip"`
}

// Trip holds the candidate itineraries returned for one search
type Trip struct {
	TripPatterns []TripPattern `json:"tripPatterns"`
}

// TripPattern is one itinerary pattern: an ordered sequence of legs.
// Raw holds the pattern exactly as received, including fields the typed view
// does not model; it is empty for patterns built in code.
type TripPattern struct {
	AimedStartTime    string  `json:"aimedStartTime"`
	AimedEndTime      string  `json:"aimedEndTime"`
	ExpectedStartTime string  `json:"expectedStartTime"`
	ExpectedEndTime   string  `json:"expectedEndTime"`
	Duration          int64   `json:"duration"`
	Distance          float64 `json:"distance"`
	Legs              []Leg   `json:"legs"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the typed view and keeps a copy of the received bytes.
func (p *TripPattern) UnmarshalJSON(data []byte) error {
	type typed TripPattern
	var t typed
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*p = TripPattern(t)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Leg is one segment of travel within a pattern. ID is unique within the
// pattern; OTP reports it as null for street legs.
type Leg struct {
	ID                *string       `json:"id"`
	Mode              string        `json:"mode"`
	AimedStartTime    string        `json:"aimedStartTime"`
	AimedEndTime      string        `json:"aimedEndTime"`
	ExpectedStartTime string        `json:"expectedStartTime"`
	ExpectedEndTime   string        `json:"expectedEndTime"`
	Realtime          bool          `json:"realtime"`
	Distance          float64       `json:"distance"`
	Duration          int64         `json:"duration"`
	FromPlace         Place         `json:"fromPlace"`
	ToPlace           Place         `json:"toPlace"`
	Line              *Line         `json:"line"`
	Authority         *Authority    `json:"authority"`
	PointsOnLink      *PointsOnLink `json:"pointsOnLink"`
}

// Place is a leg endpoint
type Place struct {
	Name string `json:"name"`
	Quay *Quay  `json:"quay"`
}

// Quay identifies a boarding position
type Quay struct {
	ID string `json:"id"`
}

// Line is the transit line served by a leg; nil for street legs
type Line struct {
	ID         string `json:"id"`
	PublicCode string `json:"publicCode"`
	Name       string `json:"name"`
}

// Authority is the organisation responsible for a line
type Authority struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PointsOnLink carries the encoded polyline of a leg
type PointsOnLink struct {
	Points string `json:"points"`
}

// Patterns returns the itinerary patterns of q, or nil when q or its trip is absent.
func (q *TripQuery) Patterns() []TripPattern {
	if q == nil || q.Trip == nil {
		return nil
	}
	return q.Trip.TripPatterns
}

// LegID returns the leg identifier, or "" when it is null.
func (l Leg) LegID() string {
	if l.ID == nil {
		return ""
	}
	return *l.ID
}
