package models

// MatchSlot describes one position of the fixed daily schedule.
// TeamA and TeamB are indexes into the tournament's four team slots (0..3).
type MatchSlot struct {
	ID    int `json:"id"`
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// MatchSchedule is the fixed 12-game schedule played every day: a double
// round-robin over the four team slots. It is a constant of the system,
// never configurable per tournament.
var MatchSchedule = [MatchCount]MatchSlot{
	{ID: 1, TeamA: 0, TeamB: 1}, {ID: 2, TeamA: 2, TeamB: 3},
	{ID: 3, TeamA: 1, TeamB: 2}, {ID: 4, TeamA: 3, TeamB: 0},
	{ID: 5, TeamA: 2, TeamB: 0}, {ID: 6, TeamA: 3, TeamB: 1},
	{ID: 7, TeamA: 0, TeamB: 1}, {ID: 8, TeamA: 2, TeamB: 3},
	{ID: 9, TeamA: 1, TeamB: 2}, {ID: 10, TeamA: 3, TeamB: 0},
	{ID: 11, TeamA: 2, TeamB: 0}, {ID: 12, TeamA: 3, TeamB: 1},
}
