package models

// SeedPlayers is the fixed roster of regulars. They always appear in the
// annual ranking, even with zero recorded activity, and their spelling is
// the canonical one for new tournaments.
var SeedPlayers = []string{
	"Rodrigo", "Italo", "MB", "Claudino", "Bené", "Samuel", "Vitim",
	"Marcílio", "Pedro", "Wagner", "Lucas", "Diêgo", "Rudson", "Léo", "Marcão",
}

// AnnualRankingEntry is one row of the annual ranking projection, ordered
// by points descending.
type AnnualRankingEntry struct {
	Player string `json:"player"`
	Points int    `json:"points"`
}
