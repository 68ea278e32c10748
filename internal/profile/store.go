package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/store"
)

const (
	// SessionKey points at the profile of the learner currently
	// logged in. Absent means logged out.
	SessionKey = "current_session"

	// identityKeyPrefix namespaces the per-identity records that
	// survive logout.
	identityKeyPrefix = "user_"
)

// ErrNotLoggedIn is returned by mutations that need an active profile.
var ErrNotLoggedIn = errors.New("no active profile")

// IdentityKey returns the storage key for an identity's record.
func IdentityKey(identity string) string {
	return identityKeyPrefix + identity
}

// Store manages the active profile on top of durable key-value
// storage. Every mutation persists both the session record and the
// per-identity record before returning.
type Store struct {
	kv     store.KV
	now    func() time.Time
	active *UserProfile
}

// NewStore creates a profile store over kv.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Active returns the logged-in profile, or nil.
func (s *Store) Active() *UserProfile {
	return s.active
}

// LoggedIn reports whether a profile is active.
func (s *Store) LoggedIn() bool {
	return s.active != nil
}

// Rehydrate restores the session from storage at startup. A missing
// or unreadable session record leaves the store logged out; it never
// fails on bad data.
func (s *Store) Rehydrate(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !found {
		s.active = nil
		return nil
	}
	p, err := decodeProfile(raw)
	if err != nil {
		s.active = nil
		return nil
	}
	s.active = p
	return nil
}

// Login activates the profile for identity. A known identity gets its
// stored record back, keeping the level it last saved; an unknown one
// is registered fresh at the requested level. The login itself counts
// as activity for the streak.
func (s *Store) Login(ctx context.Context, identity string, level content.Level) (*UserProfile, error) {
	if identity == "" {
		return nil, errors.New("empty identity")
	}

	now := s.now()
	var p *UserProfile
	raw, found, err := s.kv.Get(ctx, IdentityKey(identity))
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", identity, err)
	}
	if found {
		p, err = decodeProfile(raw)
		if err != nil {
			// Unreadable record: start the identity over.
			p = newProfile(identity, level, now)
		} else {
			EvaluateStreak(p, now)
			// Logging in refreshes the activity timestamp even when
			// the day is already counted.
			p.LastActive = &now
		}
	} else {
		p = newProfile(identity, level, now)
	}

	s.active = p
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Logout clears the active session. The per-identity record stays so
// the learner's progress survives the next login.
func (s *Store) Logout(ctx context.Context) error {
	s.active = nil
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// RefreshStreak re-evaluates the streak for the active profile and
// persists only when something changed.
func (s *Store) RefreshStreak(ctx context.Context) error {
	if s.active == nil {
		return ErrNotLoggedIn
	}
	if !EvaluateStreak(s.active, s.now()) {
		return nil
	}
	return s.persist(ctx)
}

// AddXP grants amount experience points to the active profile.
func (s *Store) AddXP(ctx context.Context, amount int) error {
	if s.active == nil {
		return ErrNotLoggedIn
	}
	if amount < 0 {
		return fmt.Errorf("negative XP amount %d", amount)
	}
	if amount == 0 {
		return nil
	}
	s.active.XP += amount
	return s.persist(ctx)
}

// ChangeLevel moves the active profile to a new class level.
func (s *Store) ChangeLevel(ctx context.Context, level content.Level) error {
	if s.active == nil {
		return ErrNotLoggedIn
	}
	if !level.Valid() {
		return fmt.Errorf("unknown level %q", level)
	}
	s.active.Level = level
	return s.persist(ctx)
}

// ChangeName renames the active profile.
func (s *Store) ChangeName(ctx context.Context, name string) error {
	if s.active == nil {
		return ErrNotLoggedIn
	}
	if name == "" {
		return errors.New("empty name")
	}
	s.active.Name = name
	return s.persist(ctx)
}

// AwardBadge appends a badge unless the profile already has it.
func (s *Store) AwardBadge(ctx context.Context, badge string) error {
	if s.active == nil {
		return ErrNotLoggedIn
	}
	for _, b := range s.active.Badges {
		if b == badge {
			return nil
		}
	}
	s.active.Badges = append(s.active.Badges, badge)
	return s.persist(ctx)
}

// persist writes the active profile under both its keys.
func (s *Store) persist(ctx context.Context) error {
	raw, err := encodeProfile(s.active)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, SessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.kv.Set(ctx, IdentityKey(s.active.Identity), raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
