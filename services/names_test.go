package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Lucas", "lucas"},
		{"trims whitespace", "  Pedro  ", "pedro"},
		{"strips diacritics", "Diêgo", "diego"},
		{"strips multiple marks", "Marcílio", "marcilio"},
		{"already lower", "rodrigo", "rodrigo"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bye marker case-insensitive", "Folga", "folga"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	resolver := testResolver()

	t.Run("ranking spelling wins over seed list", func(t *testing.T) {
		ranking := map[string]int{"LUCAS": 7}
		assert.Equal(t, "LUCAS", resolver.Resolve(ranking, "lucas"))
	})

	t.Run("seed spelling used when not in ranking", func(t *testing.T) {
		assert.Equal(t, "Diêgo", resolver.Resolve(map[string]int{}, "diego"))
		assert.Equal(t, "Léo", resolver.Resolve(map[string]int{}, "  LEO "))
	})

	t.Run("unknown name becomes its own canonical spelling", func(t *testing.T) {
		assert.Equal(t, "Zé Novo", resolver.Resolve(map[string]int{}, "  Zé Novo "))
	})

	t.Run("empty input resolves to no player", func(t *testing.T) {
		assert.Equal(t, "", resolver.Resolve(map[string]int{}, ""))
		assert.Equal(t, "", resolver.Resolve(map[string]int{}, "   "))
	})

	t.Run("idempotent", func(t *testing.T) {
		ranking := map[string]int{"Diêgo": 5}
		once := resolver.Resolve(ranking, "diego")
		assert.Equal(t, once, resolver.Resolve(ranking, once))
	})

	t.Run("variants converge once ranking has a spelling", func(t *testing.T) {
		ranking := map[string]int{"Diêgo": 5}
		a := resolver.Resolve(ranking, "DIEGO")
		b := resolver.Resolve(ranking, "diêgo")
		assert.Equal(t, a, b)
		assert.Equal(t, "Diêgo", a)
	})
}

func TestInactiveTeamName(t *testing.T) {
	assert.True(t, InactiveTeamName(""))
	assert.True(t, InactiveTeamName("   "))
	assert.True(t, InactiveTeamName("FOLGA"))
	assert.True(t, InactiveTeamName("folga"))
	assert.True(t, InactiveTeamName(" Fôlga "))
	assert.False(t, InactiveTeamName("Lucas/Pedro"))
}
