package services

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/voleidocaos/caos-server/models"
)

// stripMarks decomposes to NFD, drops the combining marks and recomposes,
// so "Diêgo" and "Diego" fold to the same key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName reduces a free-text player name to its identity key:
// trimmed, lower-cased, diacritics removed. Total: empty input gives an
// empty key.
func NormalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	folded, _, err := transform.String(stripMarks, trimmed)
	if err != nil {
		folded = trimmed
	}
	return strings.ToLower(folded)
}

// NameResolver maps free-text input to one canonical spelling per identity
// key, so "lucas" and "Lucas" never become two ranking entries.
type NameResolver struct {
	seed []string
}

func NewNameResolver(seed []string) *NameResolver {
	return &NameResolver{seed: seed}
}

// Resolve returns the canonical spelling for input. Spellings already in
// the annual ranking win over the seed list; an unknown name becomes its
// own canonical spelling, trimmed. Whitespace-only input resolves to ""
// and must be treated by the caller as "no player".
func (r *NameResolver) Resolve(ranking map[string]int, input string) string {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ""
	}

	key := NormalizeName(raw)

	// Sorted iteration keeps the pick deterministic should the ranking ever
	// hold two spellings of the same key (manual edits of old snapshots).
	existing := make([]string, 0, len(ranking))
	for name := range ranking {
		existing = append(existing, name)
	}
	sort.Strings(existing)
	for _, name := range existing {
		if NormalizeName(name) == key {
			return name
		}
	}

	for _, name := range r.seed {
		if NormalizeName(name) == key {
			return name
		}
	}

	return raw
}

// InactiveTeamName reports whether a team slot value means "no team here":
// empty or the bye marker, in any spelling.
func InactiveTeamName(name string) bool {
	n := strings.TrimSpace(name)
	return n == "" || NormalizeName(n) == NormalizeName(models.ByeMarker)
}
