// Package models contains the data types shared across promptforge.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in the conversation. Messages are immutable after
// creation and are removed only by a full-history clear.
type Message struct {
	ID        string
	Role      string
	Content   string
	Result    *PromptResult // present only on successful assistant turns
	Timestamp time.Time
}

// NewUserMessage creates a user message with a fresh unique id.
func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates an assistant message carrying an optional result.
func NewAssistantMessage(content string, result *PromptResult) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Result:    result,
		Timestamp: time.Now(),
	}
}

// Turn is the projection of a Message sent to the remote model as history.
type Turn struct {
	Role string
	Text string
}

// ProjectTurns converts messages to their outbound history form.
func ProjectTurns(messages []Message) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, msg := range messages {
		turns = append(turns, Turn{Role: msg.Role, Text: msg.Content})
	}
	return turns
}
