package profile

import (
	"context"
	"testing"
	"time"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(store.NewMemoryKV())
	s.now = func() time.Time {
		return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func TestLoginRegistersFreshProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.Login(ctx, "lea@example.fr", content.Quatrieme)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if p.Name != "lea" {
		t.Errorf("name = %q, want %q", p.Name, "lea")
	}
	if p.XP != 0 {
		t.Errorf("xp = %d, want 0", p.XP)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
	if p.Level != content.Quatrieme {
		t.Errorf("level = %q, want %q", p.Level, content.Quatrieme)
	}
	if len(p.Badges) != 1 || p.Badges[0] != WelcomeBadge {
		t.Errorf("badges = %v, want [%s]", p.Badges, WelcomeBadge)
	}
	for _, subject := range Subjects {
		if p.Strengths[subject] != 50 {
			t.Errorf("strength %q = %d, want 50", subject, p.Strengths[subject])
		}
	}
}

func TestLoginKeepsStoredLevel(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Login(ctx, "max@example.fr", content.Seconde); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if err := s.AddXP(ctx, 150); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// The requested level on a returning login is ignored.
	p, err := s.Login(ctx, "max@example.fr", content.Sixieme)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if p.Level != content.Seconde {
		t.Errorf("level = %q, want stored %q", p.Level, content.Seconde)
	}
	if p.XP != 150 {
		t.Errorf("xp = %d, want 150", p.XP)
	}
}

func TestLoginSameDayRefreshesLastActive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Login(ctx, "sam@example.fr", content.Troisieme); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// Same calendar day, six hours later.
	later := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return later }

	p, err := s.Login(ctx, "sam@example.fr", content.Troisieme)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1 (day already counted)", p.Streak)
	}
	if p.LastActive == nil || !p.LastActive.Equal(later) {
		t.Errorf("last active = %v, want %v", p.LastActive, later)
	}
}

func TestLogoutKeepsIdentityRecord(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Login(ctx, "zoe@example.fr", content.Premiere); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if s.LoggedIn() {
		t.Error("still logged in after logout")
	}
	_, found, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if found {
		t.Error("session record survived logout")
	}
	_, found, err = s.kv.Get(ctx, IdentityKey("zoe@example.fr"))
	if err != nil {
		t.Fatalf("get identity: %v", err)
	}
	if !found {
		t.Error("identity record deleted on logout")
	}
}

func TestRehydrateRestoresSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	first := NewStore(kv)
	if _, err := first.Login(ctx, "tom@example.fr", content.Terminale); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := first.AddXP(ctx, 50); err != nil {
		t.Fatalf("add xp: %v", err)
	}

	second := NewStore(kv)
	if err := second.Rehydrate(ctx); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	p := second.Active()
	if p == nil {
		t.Fatal("no active profile after rehydrate")
	}
	if p.Identity != "tom@example.fr" || p.XP != 50 {
		t.Errorf("restored profile = %+v", p)
	}
}

func TestRehydrateCorruptSessionLogsOut(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	if err := kv.Set(ctx, SessionKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	if err := s.Rehydrate(ctx); err != nil {
		t.Fatalf("rehydrate should swallow corrupt data, got %v", err)
	}
	if s.LoggedIn() {
		t.Error("logged in from a corrupt session record")
	}
}

func TestMutationsRequireLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.AddXP(ctx, 50); err != ErrNotLoggedIn {
		t.Errorf("AddXP err = %v, want ErrNotLoggedIn", err)
	}
	if err := s.ChangeLevel(ctx, content.Sixieme); err != ErrNotLoggedIn {
		t.Errorf("ChangeLevel err = %v, want ErrNotLoggedIn", err)
	}
	if err := s.ChangeName(ctx, "Léa"); err != ErrNotLoggedIn {
		t.Errorf("ChangeName err = %v, want ErrNotLoggedIn", err)
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.Login(ctx, "lea@example.fr", content.Sixieme); err != nil {
		t.Fatal(err)
	}
	if err := s.AddXP(ctx, -10); err == nil {
		t.Error("negative XP accepted")
	}
	if s.Active().XP != 0 {
		t.Errorf("xp = %d, want 0", s.Active().XP)
	}
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.Login(ctx, "lea@example.fr", content.Sixieme); err != nil {
		t.Fatal(err)
	}
	if err := s.AwardBadge(ctx, "Premier Pas"); err != nil {
		t.Fatal(err)
	}
	if err := s.AwardBadge(ctx, "Premier Pas"); err != nil {
		t.Fatal(err)
	}
	want := []string{WelcomeBadge, "Premier Pas"}
	got := s.Active().Badges
	if len(got) != len(want) {
		t.Fatalf("badges = %v, want %v", got, want)
	}
}

func TestDecodeProfileNormalizesStrengths(t *testing.T) {
	raw := `{"identity":"a@b.fr","name":"a","level":"6eme","xp":10,"streak":2,
		"badges":[],"strengths":{"Algèbre":170,"Géométrie":-5}}`
	p, err := decodeProfile(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Strengths["Algèbre"] != 100 {
		t.Errorf("Algèbre = %d, want clamped 100", p.Strengths["Algèbre"])
	}
	if p.Strengths["Géométrie"] != 0 {
		t.Errorf("Géométrie = %d, want clamped 0", p.Strengths["Géométrie"])
	}
	if p.Strengths["Probabilités"] != 50 {
		t.Errorf("missing subject = %d, want re-seeded 50", p.Strengths["Probabilités"])
	}
}
