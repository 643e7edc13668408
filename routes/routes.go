package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/voleidocaos/caos-server/handlers"
	"github.com/voleidocaos/caos-server/middleware"
)

// SetupRoutes wires every handler into the router. Everything except login
// and the live socket sits behind the session check; the admin capability
// for the destructive operations is enforced inside the ledger service.
func SetupRoutes(
	router *chi.Mux,
	authenticator *middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	rosterHandler *handlers.RosterHandler,
	matchHandler *handlers.MatchHandler,
	rankingHandler *handlers.RankingHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	// Live updates: browsers cannot set an Authorization header on a
	// websocket, and the pushed projections are the same data the read
	// endpoints serve.
	router.Get("/ws/tournaments/{date}", webSocketHandler.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(authenticator.Authenticate)

		r.Get("/schedule", matchHandler.Schedule)
		r.Get("/ranking", rankingHandler.GetRanking)
		r.Delete("/ranking", rankingHandler.ResetRanking)

		r.Get("/selected-date", tournamentHandler.GetSelectedDate)
		r.Put("/selected-date", tournamentHandler.SetSelectedDate)

		r.Route("/tournaments/{date}", func(r chi.Router) {
			r.Get("/", tournamentHandler.Get)
			r.Get("/standings", tournamentHandler.Standings)

			r.Post("/presence", rosterHandler.SetPresence)
			r.Post("/presence/all", rosterHandler.SetAllPresence)
			r.Post("/draw", rosterHandler.Draw)
			r.Put("/teams/{slot}", rosterHandler.AssignTeam)
			r.Delete("/teams", rosterHandler.ClearTeams)

			r.Put("/matches/{match}/score", matchHandler.RecordScore)
			r.Put("/matches/{match}/duration", matchHandler.RecordDuration)

			r.Post("/finalize", rankingHandler.Finalize)
			r.Post("/reset", rankingHandler.ResetTournament)
		})
	})
}
