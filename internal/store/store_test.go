package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if _, found, err := kv.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get(missing) = found=%v err=%v, want absent", found, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	v, found, err := kv.Get(ctx, "k")
	if err != nil || !found || v != "v1" {
		t.Fatalf("Get(k) = %q found=%v err=%v, want v1", v, found, err)
	}

	// Set replaces.
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	v, _, _ = kv.Get(ctx, "k")
	if v != "v2" {
		t.Fatalf("Get(k) after upsert = %q, want v2", v)
	}
}

func TestKVDelete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatal("key survived delete")
	}

	// Deleting an absent key is not an error.
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent key: %v", err)
	}
}

func TestKVKeysPrefix(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	for _, k := range []string{"user_zoe@ex.fr", "user_ali@ex.fr", "current_session"} {
		if err := kv.Set(ctx, k, "{}"); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := kv.Keys(ctx, "user_")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"user_ali@ex.fr", "user_zoe@ex.fr"}
	if len(keys) != len(want) {
		t.Fatalf("Keys(user_) = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys(user_) = %v, want %v", keys, want)
		}
	}
}

func TestEventRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "tutor-chat",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: "Salut !",
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "problem-scan",
		Success: false, ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatal(err)
	}

	events, err := repo.QueryLLMEvents(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "problem-scan" || events[1].Purpose != "tutor-chat" {
		t.Fatalf("events out of order: %q then %q", events[0].Purpose, events[1].Purpose)
	}
	if events[0].Success || !events[1].Success {
		t.Fatal("success flags did not round-trip")
	}

	e := events[1]
	if e.InputTokens != 120 || e.OutputTokens != 45 || e.LatencyMs != 830 {
		t.Errorf("usage fields did not round-trip: %+v", e)
	}
	if e.RequestBody != data.RequestBody || e.ResponseBody != data.ResponseBody {
		t.Errorf("bodies did not round-trip: %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Purpose != "tutor-chat" {
		t.Fatalf("GetLLMEvent(%d) = %+v", e.ID, got)
	}
}

func TestEventRepoQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "tutor-chat", Success: true,
		}); err != nil {
			t.Fatal(err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.EventRepo().GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("GetLLMEvent(999) = %+v, want nil", got)
	}
}
