// Package profile owns the active learner's identity and progress:
// level, XP, daily streak, badges and per-subject strengths. All state
// is persisted through a key-value store on every mutation.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mathpech/mathpech/internal/content"
)

// Subjects is the fixed set of strength keys every profile carries.
var Subjects = []string{"Algèbre", "Géométrie", "Probabilités", "Statistiques"}

// WelcomeBadge is granted at registration.
const WelcomeBadge = "Bienvenue"

// seedStrength is the neutral starting value for every subject.
const seedStrength = 50

// UserProfile is the persisted learner record. Identity (the login
// email) is the storage key; everything else is mutable state.
type UserProfile struct {
	Identity   string         `json:"identity"`
	Name       string         `json:"name"`
	Level      content.Level  `json:"level"`
	XP         int            `json:"xp"`
	Streak     int            `json:"streak"`
	LastActive *time.Time     `json:"last_active,omitempty"`
	Badges     []string       `json:"badges"`
	Strengths  map[string]int `json:"strengths"`
}

// newProfile seeds a freshly registered profile: XP zero, a one-day
// streak, the welcome badge, and neutral strengths for every subject.
func newProfile(identity string, level content.Level, now time.Time) *UserProfile {
	strengths := make(map[string]int, len(Subjects))
	for _, s := range Subjects {
		strengths[s] = seedStrength
	}
	return &UserProfile{
		Identity:   identity,
		Name:       displayName(identity),
		Level:      level,
		XP:         0,
		Streak:     1,
		LastActive: &now,
		Badges:     []string{WelcomeBadge},
		Strengths:  strengths,
	}
}

// displayName derives the default name from the login email.
func displayName(identity string) string {
	if at := strings.IndexByte(identity, '@'); at > 0 {
		return identity[:at]
	}
	return identity
}

// encodeProfile serializes a profile for storage.
func encodeProfile(p *UserProfile) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(b), nil
}

// decodeProfile deserializes a stored record and normalizes it: a
// record without an identity is rejected as corrupt, missing subjects
// are re-seeded and strength values are clamped to [0, 100].
func decodeProfile(raw string) (*UserProfile, error) {
	var p UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.Identity == "" {
		return nil, fmt.Errorf("decode profile: missing identity")
	}
	if p.Streak < 1 {
		p.Streak = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Strengths == nil {
		p.Strengths = make(map[string]int, len(Subjects))
	}
	for _, s := range Subjects {
		v, ok := p.Strengths[s]
		if !ok {
			p.Strengths[s] = seedStrength
			continue
		}
		if v < 0 {
			p.Strengths[s] = 0
		} else if v > 100 {
			p.Strengths[s] = 100
		}
	}
	return &p, nil
}
