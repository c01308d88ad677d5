// Package match holds the transient result of scoring one caregiver against a patient.
package match

import "github.com/carelinkgh/carematch/internal/domain/profile"

// Match is a caregiver with its combined matching score. Recomputed per request,
// never persisted.
type Match struct {
	caregiver profile.Caregiver
	score     float64
}

// New creates a match.
func New(caregiver profile.Caregiver, score float64) Match {
	return Match{caregiver: caregiver, score: score}
}

// Caregiver returns the scored caregiver.
func (m *Match) Caregiver() profile.Caregiver { return m.caregiver }

// Score returns the combined score in [0,1].
func (m *Match) Score() float64 { return m.score }
