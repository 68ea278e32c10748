package tutor

import (
	"github.com/google/uuid"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/llm"
)

// ChatMessage is one turn in a tutoring conversation.
type ChatMessage struct {
	Role llm.Role
	Text string
}

// Conversation is an append-only chat transcript with the tutor.
// At most one request is outstanding at a time: Begin gates sends
// until the matching Resolve.
type Conversation struct {
	ID       uuid.UUID
	Level    content.Level
	Messages []ChatMessage

	pending bool
}

// NewConversation opens a transcript seeded with the tutor's greeting.
func NewConversation(level content.Level) *Conversation {
	return &Conversation{
		ID:    uuid.New(),
		Level: level,
		Messages: []ChatMessage{
			{Role: llm.RoleAssistant, Text: Greeting},
		},
	}
}

// Pending reports whether a tutor request is outstanding.
func (c *Conversation) Pending() bool {
	return c.pending
}

// Begin appends the student's message and marks the conversation
// pending. It returns false, without appending, while an earlier
// request is still outstanding or the message is empty.
func (c *Conversation) Begin(message string) bool {
	if c.pending || message == "" {
		return false
	}
	c.Messages = append(c.Messages, ChatMessage{Role: llm.RoleUser, Text: message})
	c.pending = true
	return true
}

// BeginScan marks the conversation pending for a problem scan without
// appending a student message.
func (c *Conversation) BeginScan() bool {
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

// Resolve appends the tutor's reply and clears the pending gate.
func (c *Conversation) Resolve(reply string) {
	c.Messages = append(c.Messages, ChatMessage{Role: llm.RoleAssistant, Text: reply})
	c.pending = false
}

// History returns the transcript up to but excluding the last message
// when it is the in-flight student turn.
func (c *Conversation) History() []ChatMessage {
	if c.pending && len(c.Messages) > 0 && c.Messages[len(c.Messages)-1].Role == llm.RoleUser {
		return c.Messages[:len(c.Messages)-1]
	}
	return c.Messages
}
