package profile

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestEvaluateStreak(t *testing.T) {
	now := day(2026, time.March, 10, 9)

	tests := []struct {
		name        string
		lastActive  *time.Time
		streak      int
		wantStreak  int
		wantChanged bool
	}{
		{
			name:        "no recorded activity starts at one",
			lastActive:  nil,
			streak:      0,
			wantStreak:  1,
			wantChanged: true,
		},
		{
			name:        "same day is a no-op",
			lastActive:  ptr(day(2026, time.March, 10, 1)),
			streak:      4,
			wantStreak:  4,
			wantChanged: false,
		},
		{
			name:        "yesterday increments",
			lastActive:  ptr(day(2026, time.March, 9, 23)),
			streak:      4,
			wantStreak:  5,
			wantChanged: true,
		},
		{
			name:        "two days ago resets",
			lastActive:  ptr(day(2026, time.March, 8, 9)),
			streak:      12,
			wantStreak:  1,
			wantChanged: true,
		},
		{
			name:        "long gap resets",
			lastActive:  ptr(day(2025, time.December, 24, 9)),
			streak:      30,
			wantStreak:  1,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &UserProfile{Streak: tt.streak, LastActive: tt.lastActive}
			changed := EvaluateStreak(p, now)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if p.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", p.Streak, tt.wantStreak)
			}
			if tt.wantChanged {
				if p.LastActive == nil || !p.LastActive.Equal(now) {
					t.Errorf("last active = %v, want %v", p.LastActive, now)
				}
			} else if !p.LastActive.Equal(*tt.lastActive) {
				t.Errorf("last active moved on a no-op: %v", p.LastActive)
			}
		})
	}
}

func TestEvaluateStreakSameDayDifferentHours(t *testing.T) {
	p := &UserProfile{Streak: 2, LastActive: ptr(day(2026, time.March, 10, 0))}
	if EvaluateStreak(p, day(2026, time.March, 10, 23)) {
		t.Error("23 hours apart on the same calendar day should not change the streak")
	}
}

func ptr(t time.Time) *time.Time { return &t }
