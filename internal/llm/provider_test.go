package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProviderEmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "bonjour"}},
		Images:   []Image{{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
	if len(mock.Calls[0].Images) != 1 {
		t.Fatalf("image attachment not recorded")
	}
}

func TestMockProviderSpeech(t *testing.T) {
	mock := NewMockProvider()
	mock.Audio = []byte{0x52, 0x49, 0x46, 0x46}

	audio, err := mock.GenerateSpeech(context.Background(), "Bonjour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audio) != 4 {
		t.Fatalf("expected 4 audio bytes, got %d", len(audio))
	}

	mock.SpeechErr = errors.New("tts down")
	if _, err := mock.GenerateSpeech(context.Background(), "Bonjour"); err == nil {
		t.Fatal("expected speech error")
	}
}

// textOnlyProvider has no speech support.
type textOnlyProvider struct{}

func (textOnlyProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{Content: json.RawMessage(`{}`)}, nil
}
func (textOnlyProvider) ModelID() string { return "text-only" }

func TestSpeechKeepsMiddlewareChain(t *testing.T) {
	mock := NewMockProvider()
	mock.Audio = []byte{1, 2, 3, 4}
	repo := &captureEventRepo{}
	wrapped := WithRetry(WithLogging(mock, repo), retryConfig())

	sp, ok := Speech(wrapped)
	if !ok {
		t.Fatal("speech capability not detected through middleware")
	}
	if any(sp) != any(wrapped) {
		t.Fatal("narration must go through the decorators, not around them")
	}

	ctx := WithPurpose(context.Background(), "lesson-audio")
	audio, err := sp.GenerateSpeech(ctx, "Bonjour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(audio) != 4 {
		t.Fatalf("expected 4 audio bytes, got %d", len(audio))
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "lesson-audio" {
		t.Errorf("purpose = %q, want lesson-audio", e.Purpose)
	}
	if !e.Success {
		t.Error("event not marked successful")
	}
	if e.ResponseBody != "[audio: 4 bytes]" {
		t.Errorf("response body = %q, want the audio size note", e.ResponseBody)
	}
}

func TestSpeechLogsFailures(t *testing.T) {
	mock := NewMockProvider()
	mock.SpeechErr = &ErrMaxTokensExceeded{}
	repo := &captureEventRepo{}
	wrapped := WithRetry(WithLogging(mock, repo), retryConfig())

	sp, ok := Speech(wrapped)
	if !ok {
		t.Fatal("speech capability not detected through middleware")
	}

	if _, err := sp.GenerateSpeech(context.Background(), "Bonjour"); err == nil {
		t.Fatal("expected speech error")
	}
	// Non-retryable error: exactly one attempt, one failure event.
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	if repo.events[0].Success {
		t.Error("failed call logged as success")
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("failure event carries no error message")
	}
}

func TestSpeechRejectsTextOnlyProviders(t *testing.T) {
	wrapped := WithRetry(WithLogging(textOnlyProvider{}, nopEventRepo{}), retryConfig())
	if _, ok := Speech(wrapped); ok {
		t.Fatal("text-only provider reported as speech capable")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "tutor-chat")
	if p := PurposeFrom(ctx); p != "tutor-chat" {
		t.Fatalf("expected 'tutor-chat', got %q", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "minitel"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
