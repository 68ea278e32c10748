// Package tutor implements the AI tutoring features: the chat tutor,
// mistake remediation, the problem scanner and lesson narration.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/llm"
)

// Config tunes the tutor's generation parameters.
type Config struct {
	MaxTokens       int
	ChatTemperature float64
}

// DefaultConfig returns the standard tutor tuning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       1024,
		ChatTemperature: 0.7,
	}
}

// Service answers tutoring requests through an LLM provider.
// All methods are synchronous; callers run them off the UI loop.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ChatResponse answers the student's message in the context of the
// conversation so far. The reply is French prose with LaTeX formulas.
func (s *Service) ChatResponse(ctx context.Context, level content.Level, history []ChatMessage, message string) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, h := range history {
		msgs = append(msgs, llm.Message{Role: h.Role, Content: h.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      fmt.Sprintf(chatSystemPrompt, level.Label()),
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.ChatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor chat: %w", err)
	}

	text := string(resp.Content)
	if text == "" {
		return FallbackChat, nil
	}
	return text, nil
}

// ExplainMistake explains why the student's answer to a question is
// wrong. It never fails: any provider error degrades to a generic
// French encouragement.
func (s *Service) ExplainMistake(ctx context.Context, level content.Level, question, correctAnswer, userAnswer string) string {
	ctx = llm.WithPurpose(ctx, "explain-mistake")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: remediationSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(explainMistakePrompt, level.Label(), userAnswer, question, correctAnswer),
		}},
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil || len(resp.Content) == 0 {
		return FallbackExplain
	}
	return string(resp.Content)
}

// ScanResult is the tutor's reading of a photographed exercise.
type ScanResult struct {
	Hint     string   `json:"hint"`
	Formulas []string `json:"formulas"`
}

// ScanProblem analyzes an exercise image and returns a starting hint
// with the key formulas. Unusable model output degrades to a fallback
// hint with no formulas; provider failures are returned as errors.
func (s *Service) ScanProblem(ctx context.Context, level content.Level, image llm.Image) (ScanResult, error) {
	ctx = llm.WithPurpose(ctx, "problem-scan")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(scanPrompt, level.Label()),
		}},
		Images:    []llm.Image{image},
		Schema:    ScanSchema,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return ScanResult{Hint: FallbackScan, Formulas: []string{}}, nil
		}
		return ScanResult{}, fmt.Errorf("problem scan: %w", err)
	}

	var out ScanResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ScanResult{Hint: FallbackScan, Formulas: []string{}}, nil
	}
	if out.Hint == "" {
		out.Hint = FallbackHint
	}
	if out.Formulas == nil {
		out.Formulas = []string{}
	}
	return out, nil
}

// LessonAudio narrates a lesson and returns the audio bytes. ok is
// false when the provider cannot synthesize speech; narration is an
// enhancement and never produces an error for the caller.
func (s *Service) LessonAudio(ctx context.Context, title, body string) (audio []byte, ok bool) {
	speech, supported := llm.Speech(s.provider)
	if !supported {
		return nil, false
	}

	ctx = llm.WithPurpose(ctx, "lesson-audio")
	data, err := speech.GenerateSpeech(ctx, fmt.Sprintf(narrationPrompt, title, body))
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
