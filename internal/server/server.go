// Package server provides the HTTP webhook the voice platform posts events
// to.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/book-expert/logger"
	"github.com/book-expert/wod-skill-service/internal/alexa"
	"github.com/book-expert/wod-skill-service/internal/interaction"
	"github.com/go-chi/chi/v5"
)

// maxEnvelopeBytes bounds the request body; platform events are small JSON
// documents.
const maxEnvelopeBytes = 1 << 20

// Server holds dependencies for the webhook handlers.
type Server struct {
	model         *interaction.Model
	applicationID string
	log           *logger.Logger
	router        chi.Router
}

// New creates a Server with all routes configured.
func New(model *interaction.Model, applicationID string, log *logger.Logger) *Server {
	srv := &Server{
		model:         model,
		applicationID: applicationID,
		log:           log,
		router:        chi.NewRouter(),
	}
	srv.routes()

	return srv
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Post("/v1/skill", s.handleSkillRequest)
}

func (s *Server) handleSkillRequest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEnvelopeBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)

		return
	}

	envelope, err := alexa.ParseEnvelope(body)
	if err != nil {
		s.log.Warn("rejected envelope: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	err = envelope.VerifyApplication(s.applicationID)
	if err != nil {
		s.log.Warn("rejected application: %v", err)
		http.Error(w, err.Error(), http.StatusForbidden)

		return
	}

	response, err := s.model.HandleEvent(r.Context(), envelope)
	if err != nil {
		s.log.Error("failed to handle %s: %v", envelope.Request.Type, err)

		status := http.StatusInternalServerError
		if errors.Is(err, interaction.ErrUnknownIntent) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	encodeErr := json.NewEncoder(w).Encode(response.Envelope())
	if encodeErr != nil {
		s.log.Error("failed to encode response: %v", encodeErr)
	}
}
