package profile

import "time"

// EvaluateStreak applies the daily streak rules to p at the given
// moment and reports whether the profile changed. Granularity is the
// calendar day in now's location:
//
//   - no recorded activity: streak starts at 1
//   - last active today: nothing changes
//   - last active yesterday: streak increments
//   - any older day: streak resets to 1
func EvaluateStreak(p *UserProfile, now time.Time) bool {
	if p.LastActive == nil {
		p.Streak = 1
		stamp := now
		p.LastActive = &stamp
		return true
	}

	last := p.LastActive.In(now.Location())
	switch {
	case sameDay(last, now):
		return false
	case sameDay(last, now.AddDate(0, 0, -1)):
		p.Streak++
	default:
		p.Streak = 1
	}

	stamp := now
	p.LastActive = &stamp
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
