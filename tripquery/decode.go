package tripquery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrGraphQL is returned when the response carries GraphQL errors and no trip
var ErrGraphQL = errors.New("graphql error")

type graphQLError struct {
	Message string `json:"message"`
}

// envelope covers both the GraphQL response shape and the bare `{"trip": …}` shape
type envelope struct {
	Data   *TripQuery      `json:"data"`
	Errors []graphQLError  `json:"errors"`
	Trip   json.RawMessage `json:"trip"`
}

// Decode parses a trip query response body.
// Empty input and a JSON null decode to an absent (nil) result.
func Decode(data []byte) (*TripQuery, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode trip query: %w", err)
	}

	if env.Data != nil && env.Data.Trip != nil {
		return env.Data, nil
	}
	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, env.Errors[0].Message)
	}
	if env.Data != nil {
		return env.Data, nil
	}

	if len(env.Trip) == 0 {
		return nil, nil
	}
	var q TripQuery
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode trip query: %w", err)
	}
	return &q, nil
}
