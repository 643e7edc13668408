package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voleidocaos/caos-server/live"
	"github.com/voleidocaos/caos-server/services"
)

type MatchHandler struct {
	matches services.MatchService
	hub     *live.Hub
}

func NewMatchHandler(matches services.MatchService, hub *live.Hub) *MatchHandler {
	return &MatchHandler{matches: matches, hub: hub}
}

// Schedule returns the fixed 12-game schedule.
func (h *MatchHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": h.matches.Schedule()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func matchIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "match"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidMatchIndex)
		return 0, false
	}
	return idx, true
}

// RecordScore stores one side's score for a match. A null score clears the
// side back to "not entered"; scores arrive as JSON integers, so in-progress
// text never reaches the standings.
func (h *MatchHandler) RecordScore(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	idx, ok := matchIndexParam(w, r)
	if !ok {
		return
	}

	var input struct {
		Side  string `json:"side"`
		Score *int   `json:"score"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.matches.RecordScore(r.Context(), date, idx, services.Side(input.Side), input.Score)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordDuration stores the stopwatch reading for a match.
func (h *MatchHandler) RecordDuration(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	idx, ok := matchIndexParam(w, r)
	if !ok {
		return
	}

	var input struct {
		Duration string `json:"duration"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.matches.RecordDuration(r.Context(), date, idx, input.Duration)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
