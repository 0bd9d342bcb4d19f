// Package tripquery defines the OTP Transmodel trip query result consumed by
// the itinerary list view.
//
// It contains:
//   - TripQuery, Trip, TripPattern and Leg: the typed result object
//   - Decode: parsing of a GraphQL response body (envelope or bare form)
//   - Client: loading a result from an http(s) URL or a local file
//
// A nil *TripQuery means the result is absent. The view renders only its
// heading in that case.
package tripquery
