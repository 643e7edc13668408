package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voleidocaos/caos-server/live"
	"github.com/voleidocaos/caos-server/models"
	"github.com/voleidocaos/caos-server/services"
)

type RosterHandler struct {
	roster services.RosterService
	hub    *live.Hub
}

func NewRosterHandler(roster services.RosterService, hub *live.Hub) *RosterHandler {
	return &RosterHandler{roster: roster, hub: hub}
}

// pushTournament fans the updated projection out to the date's live room.
// Which views to refresh from it is the front-end's call.
func pushTournament(hub *live.Hub, date string, t *models.Tournament) {
	hub.BroadcastToDate(date, live.Message{Type: live.TypeTournamentUpdated, Payload: t})
	hub.BroadcastToDate(date, live.Message{
		Type:    live.TypeStandingsUpdated,
		Payload: services.ComputeStandings(t),
	})
}

// SetPresence marks one player present or absent for the date.
func (h *RosterHandler) SetPresence(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var input struct {
		Player  string `json:"player"`
		Present bool   `json:"present"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.roster.SetPresence(r.Context(), date, input.Player, input.Present)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetAllPresence bulk-marks the first 6 or 8 seed players present, or
// clears the presence list.
func (h *RosterHandler) SetAllPresence(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	var input struct {
		Present bool `json:"present"`
		Count   int  `json:"count"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Present && input.Count == 0 {
		input.Count = 8
	}

	t, err := h.roster.SelectAllPresent(r.Context(), date, input.Present, input.Count)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Draw shuffles the present players into pair-teams.
func (h *RosterHandler) Draw(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.roster.Draw(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignTeam sets one team slot to free text.
func (h *RosterHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidTeamSlot)
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.roster.AssignTeam(r.Context(), date, slot, input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearTeams empties all four team slots.
func (h *RosterHandler) ClearTeams(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.roster.ClearTeams(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": t}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
