package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/itinerary-view/formatter"
	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
	"github.com/theoremus-urban-solutions/itinerary-view/tripquery"
)

const defaultMaxBodyBytes = 4 << 20

var errNoUpstream = errors.New("no trip query source configured")

func (s *Server) handleItineraries(format formatter.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With(zap.String("request_id", RequestIDFrom(r.Context())), zap.String("format", string(format)))

		var (
			result *tripquery.TripQuery
			err    error
		)
		switch r.Method {
		case http.MethodPost:
			result, err = s.decodeBody(w, r)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
					return
				}
				log.Warn("invalid trip query body", zap.Error(err))
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		case http.MethodGet:
			result, err = s.loadUpstream(r.Context())
			if errors.Is(err, errNoUpstream) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			if err != nil {
				log.Error("load upstream trip query failed", zap.Error(err), zap.String("source", s.cfg.OTP.TripQueryURL))
				writeError(w, http.StatusBadGateway, "trip query upstream error")
				return
			}
		default:
			w.Header().Set("Allow", "GET, POST")
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		list := itinerary.BuildList(result, s.viewOptions())
		out, err := s.builder.Build(list, format)
		if err != nil {
			log.Error("render itinerary list failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "render error")
			return
		}
		log.Debug("rendered itinerary list", zap.Int("cards", len(list.Cards)))

		w.Header().Set("Content-Type", formatter.ContentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (*tripquery.TripQuery, error) {
	limit := int64(s.cfg.Server.MaxBodyBytes)
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body := http.MaxBytesReader(w, r.Body, limit)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return tripquery.Decode(data)
}

func (s *Server) loadUpstream(ctx context.Context) (*tripquery.TripQuery, error) {
	if s.cfg.OTP.TripQueryURL == "" {
		return nil, errNoUpstream
	}
	return s.client.Load(ctx, s.cfg.OTP.TripQueryURL)
}

func (s *Server) viewOptions() itinerary.Options {
	return itinerary.Options{
		Heading: s.cfg.View.Heading,
		Width:   s.cfg.View.Width,
	}
}
