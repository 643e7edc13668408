package models

// TeamStanding is one row of the daily classification. Saldo is points
// scored minus points conceded; ties on wins are broken by saldo.
type TeamStanding struct {
	Slot          int    `json:"slot"`
	Team          string `json:"team"`
	Wins          int    `json:"wins"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
	Saldo         int    `json:"saldo"`
}
