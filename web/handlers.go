/* handlers.go
 * Contains the HTTP handlers for the three read endpoints and the mapping
 * from store errors to status codes. Error payloads stay generic: callers
 * get a coarse status and message, the detail goes to the logger.
 * Authors: Karan Kamath
 */

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/KaranKamath21/Plagify/api/store"
)

// errorResponse is the generic error payload for every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// ListContestsHandler serves GET /api/contests: the full contest directory
// snapshot, no server-side narrowing.
func (s *Server) ListContestsHandler(w http.ResponseWriter, r *http.Request) {
	contests, err := s.api.ListContests(r.Context())
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch contests")
		return
	}
	s.writeJSON(w, http.StatusOK, contests)
}

// GetContestHandler serves GET /api/contests/{id}
func (s *Server) GetContestHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	contest, err := s.api.GetContest(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch contest")
		return
	}
	s.writeJSON(w, http.StatusOK, contest)
}

// ListQuestionRecordsHandler serves GET /api/questions/{questionId}. An
// unknown question id answers 200 with an empty array, deliberately not 404:
// absence of findings and absence of a dataset are the same to callers.
func (s *Server) ListQuestionRecordsHandler(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	records, err := s.api.ListQuestionRecords(r.Context(), questionID)
	if err != nil {
		s.writeError(w, r, err, "Failed to fetch question data")
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// writeError maps a store error to a coarse status code and generic message,
// logging the full error server side.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, genericMsg string) {
	status := http.StatusInternalServerError
	msg := genericMsg

	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
		msg = "Contest not found"
	case errors.Is(err, store.ErrInvalidIdentifier):
		status = http.StatusBadRequest
		msg = "Invalid identifier"
	}

	s.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON serialises a response body with the standard headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already written; nothing to send the caller
		s.logger.Error("encoding response failed", zap.Error(err))
	}
}
