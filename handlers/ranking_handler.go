package handlers

import (
	"errors"
	"net/http"

	"github.com/voleidocaos/caos-server/live"
	"github.com/voleidocaos/caos-server/services"
)

type RankingHandler struct {
	ranking services.RankingService
	store   *services.Store
	hub     *live.Hub
}

func NewRankingHandler(ranking services.RankingService, store *services.Store, hub *live.Hub) *RankingHandler {
	return &RankingHandler{ranking: ranking, store: store, hub: hub}
}

// GetRanking returns the annual ranking ordered by points.
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": h.store.AnnualRanking()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Finalize closes the day out and feeds the award into the annual ranking.
// Finalizing an already finished tournament is answered as a no-op, not a
// failure: the points were applied exactly once either way.
func (h *RankingHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.ranking.Finalize(r.Context(), date)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyFinished) {
			if err := writeJSON(w, http.StatusOK, jsonResponse{"finished": true}, nil); err != nil {
				serverErrorResponse(w, r, err)
			}
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	h.hub.BroadcastAll(live.Message{Type: live.TypeRankingUpdated, Payload: h.store.AnnualRanking()})

	response := jsonResponse{
		"tournament": t,
		"ranking":    h.store.AnnualRanking(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetTournament discards the date's tournament, reverting its award if it
// had been finalized. Admin only.
func (h *RankingHandler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	t, err := h.ranking.ResetTournament(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	pushTournament(h.hub, date, t)
	h.hub.BroadcastAll(live.Message{Type: live.TypeRankingUpdated, Payload: h.store.AnnualRanking()})

	response := jsonResponse{
		"tournament": t,
		"ranking":    h.store.AnnualRanking(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetRanking zeroes the whole annual ranking. Admin only.
func (h *RankingHandler) ResetRanking(w http.ResponseWriter, r *http.Request) {
	if err := h.ranking.ResetRanking(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.hub.BroadcastAll(live.Message{Type: live.TypeRankingUpdated, Payload: h.store.AnnualRanking()})

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": h.store.AnnualRanking()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
