package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sullhouse/sullstice/internal/htmlgen"
	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/notify"
	"github.com/sullhouse/sullstice/internal/responder"
)

// Health Check

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	status := map[string]interface{}{
		"status": "healthy",
		"email":  "unconfigured",
	}
	if s.mailer != nil && s.mailer.IsConfigured() {
		status["email"] = s.mailer.Name()
	}

	respondJSON(w, http.StatusOK, status)
}

// RSVP API

func (s *Server) handleRSVP(w http.ResponseWriter, r *http.Request) {
	var rsvp models.RsvpRecord
	if err := json.NewDecoder(r.Body).Decode(&rsvp); err != nil {
		respondError(w, http.StatusBadRequest, "request is not a JSON object")
		return
	}
	rsvp.ApplyDefaults()

	ref := s.archiveRequest(r, rsvp)

	resp := s.responder.RespondToRSVP(r.Context(), rsvp)

	if s.db != nil {
		if _, err := s.db.SaveRSVP(rsvp, resp.Subject, resp.Body); err != nil {
			s.log.Error().Err(err).Msg("Failed to save RSVP")
		}
	}

	s.sendRSVPEmail(r, rsvp, resp)

	payload := map[string]interface{}{
		"name":         rsvp.Name,
		"email":        rsvp.Email,
		"other_guests": rsvp.OtherGuests,
		"arriving":     rsvp.Arriving,
		"departing":    rsvp.Departing,
		"camping":      rsvp.Camping,
		"notes":        rsvp.Notes,
		"questions":    rsvp.Questions,
		"status":       "RSVP received successfully",
		"subject":      resp.Subject,
		"body":         resp.Body,
	}
	s.archiveResponse(ref, payload)

	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) sendRSVPEmail(r *http.Request, rsvp models.RsvpRecord, resp responder.GeneratedResponse) {
	if s.mailer == nil || !s.mailer.IsConfigured() {
		return
	}
	if rsvp.Email == "" {
		s.log.Warn().Str("name", rsvp.Name).Msg("RSVP has no email address, skipping confirmation")
		return
	}

	msg := notify.Message{
		To:      []string{rsvp.Email},
		Cc:      []string{s.hostEmail},
		ReplyTo: s.hostEmail,
		Subject: resp.Subject,
		Text:    resp.Body,
	}
	if err := s.mailer.Send(r.Context(), msg); err != nil {
		s.log.Error().Err(err).Str("to", rsvp.Email).Msg("Failed to send RSVP confirmation")
	}
}

// Questions API

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "request is not a JSON object")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "no question provided")
		return
	}

	ref := s.archiveRequest(r, map[string]string{"question": req.Question})

	answer := s.responder.AnswerQuestion(r.Context(), req.Question)

	if s.db != nil {
		if _, err := s.db.SaveQuestion(req.Question, answer); err != nil {
			s.log.Error().Err(err).Msg("Failed to save question")
		}
	}

	s.notifyHostOfQuestion(r, req.Question, answer)

	payload := map[string]interface{}{
		"question": req.Question,
		"answer":   answer,
		"status":   "success",
	}
	s.archiveResponse(ref, payload)

	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) notifyHostOfQuestion(r *http.Request, question, answer string) {
	if s.mailer == nil || !s.mailer.IsConfigured() || s.hostEmail == "" {
		return
	}

	msg := notify.Message{
		To:      []string{s.hostEmail},
		ReplyTo: s.hostEmail,
		Subject: "Sullstice Question",
		Text:    fmt.Sprintf("Question: %s\n\nAnswer: %s", question, answer),
	}
	if err := s.mailer.Send(r.Context(), msg); err != nil {
		s.log.Error().Err(err).Msg("Failed to send question notification")
	}
}

// Updated Details Page

func (s *Server) handleUpdatedDetails(w http.ResponseWriter, r *http.Request) {
	doc := s.content.UpdatedEventDetails(r.Context())
	if doc == "" {
		respondError(w, http.StatusInternalServerError, "could not load document content")
		return
	}

	page := htmlgen.GenerateDetailsHTML(doc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// Archival helpers. Best-effort: failures are logged and the request
// proceeds.

func (s *Server) archiveRequest(r *http.Request, payload interface{}) string {
	if s.archive == nil {
		return ""
	}

	headers := make(map[string]string, len(r.Header))
	for key := range r.Header {
		headers[key] = r.Header.Get(key)
	}

	record := map[string]interface{}{
		"method":  r.Method,
		"path":    r.URL.Path,
		"headers": headers,
		"json":    payload,
	}
	ref, err := s.archive.SaveRequest(record)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to archive request")
	}
	return ref
}

func (s *Server) archiveResponse(ref string, payload interface{}) {
	if s.archive == nil || ref == "" {
		return
	}
	if err := s.archive.SaveResponse(ref, payload); err != nil {
		s.log.Error().Err(err).Msg("Failed to archive response")
	}
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
