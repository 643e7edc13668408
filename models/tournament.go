package models

const (
	// TeamSlots is the number of team slots in every daily tournament.
	TeamSlots = 4
	// MatchCount is the number of games in the fixed daily schedule.
	MatchCount = 12

	// ByeMarker fills the fourth team slot on 6-player days. A slot holding
	// the marker (or an empty string) takes part in no match.
	ByeMarker = "FOLGA"
)

// Score holds the recorded result of one match. A nil side means the score
// has not been entered yet; such a match contributes nothing to the
// standings. Duration is an opaque stopwatch reading supplied by the client.
type Score struct {
	A        *int   `json:"score_a"`
	B        *int   `json:"score_b"`
	Duration string `json:"duration,omitempty"`
}

// Clear resets the score to the not-yet-played state.
func (s *Score) Clear() {
	s.A = nil
	s.B = nil
	s.Duration = ""
}

// Tournament is one daily tournament, keyed in the snapshot by its ISO date.
// Teams always has length TeamSlots and Scores length MatchCount, index i of
// Scores belonging to MatchSchedule[i].
type Tournament struct {
	Teams          []string       `json:"teams"`
	PresentPlayers []string       `json:"present_players"`
	Scores         []Score        `json:"scores"`
	Finished       bool           `json:"finished"`
	// AnnualAward records the exact contribution this tournament made to the
	// annual ranking when it was finalized, so a reset can estornar it.
	// Nil until the tournament is finished.
	AnnualAward map[string]int `json:"annual_award,omitempty"`
}

// DefaultTournament returns a tournament in its initial empty state.
func DefaultTournament() *Tournament {
	return &Tournament{
		Teams:          make([]string, TeamSlots),
		PresentPlayers: []string{},
		Scores:         make([]Score, MatchCount),
	}
}

// Backfill restores fields missing from snapshots written by older versions
// so the rest of the code can assume the fixed shapes.
func (t *Tournament) Backfill() {
	if t.PresentPlayers == nil {
		t.PresentPlayers = []string{}
	}
	if len(t.Teams) != TeamSlots {
		teams := make([]string, TeamSlots)
		copy(teams, t.Teams)
		t.Teams = teams
	}
	if len(t.Scores) != MatchCount {
		scores := make([]Score, MatchCount)
		copy(scores, t.Scores)
		t.Scores = scores
	}
}

// Clone returns a deep copy, used for the read projections handed to the
// presentation layer.
func (t *Tournament) Clone() *Tournament {
	c := *t
	c.Teams = append([]string(nil), t.Teams...)
	c.PresentPlayers = append([]string(nil), t.PresentPlayers...)
	c.Scores = make([]Score, len(t.Scores))
	for i, s := range t.Scores {
		c.Scores[i] = s
		if s.A != nil {
			a := *s.A
			c.Scores[i].A = &a
		}
		if s.B != nil {
			b := *s.B
			c.Scores[i].B = &b
		}
	}
	if t.AnnualAward != nil {
		c.AnnualAward = make(map[string]int, len(t.AnnualAward))
		for k, v := range t.AnnualAward {
			c.AnnualAward[k] = v
		}
	}
	return &c
}

// Snapshot is the whole persisted state of the application, saved as a
// single document after every mutation.
type Snapshot struct {
	Tournaments  map[string]*Tournament `json:"tournaments"`
	AnnualPoints map[string]int         `json:"annual_points"`
}

// NewSnapshot returns an empty snapshot with the seed players already
// present in the annual ranking at zero points.
func NewSnapshot() *Snapshot {
	snap := &Snapshot{
		Tournaments:  make(map[string]*Tournament),
		AnnualPoints: make(map[string]int),
	}
	snap.EnsureSeedPlayers()
	return snap
}

// EnsureSeedPlayers guarantees every seed player has an annual ranking
// entry, defaulting absent ones to zero.
func (s *Snapshot) EnsureSeedPlayers() {
	if s.AnnualPoints == nil {
		s.AnnualPoints = make(map[string]int)
	}
	for _, p := range SeedPlayers {
		if _, ok := s.AnnualPoints[p]; !ok {
			s.AnnualPoints[p] = 0
		}
	}
}
