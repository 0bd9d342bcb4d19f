// Package server exposes the itinerary list view over HTTP.
//
// Routes:
//   - GET  /api/health
//   - POST /api/itineraries.{html,json,txt,pdf}: render the trip query in the body
//   - GET  /api/itineraries.{html,json,txt,pdf}: render the configured upstream trip query
package server
