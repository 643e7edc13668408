package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/voleidocaos/caos-server/services"
)

type TournamentHandler struct {
	store *services.Store
}

func NewTournamentHandler(store *services.Store) *TournamentHandler {
	return &TournamentHandler{store: store}
}

// dateParam extracts and validates the {date} URL parameter. Dates key the
// snapshot map, so anything but an ISO date is refused before it can mint
// a junk tournament record.
func dateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
		return "", false
	}
	return date, true
}

// Get returns the tournament for the date, creating the default record on
// first access.
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.store.Tournament(r.Context(), date)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Standings returns the daily classification derived from the recorded
// scores.
func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.store.Tournament(r.Context(), date)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	standings := services.ComputeStandings(t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetSelectedDate(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"selected_date": h.store.SelectedDate()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) SetSelectedDate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date string `json:"date"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	if err := h.store.SetSelectedDate(r.Context(), input.Date); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"selected_date": input.Date}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
