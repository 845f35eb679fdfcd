package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aitools/backend/internal/constants"
)

// Role is the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage stamps a message with a fresh id and the current time
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   content,
		Role:      role,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks if the Message is usable as chat context
func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return ErrInvalidMessage{Field: "role", Reason: fmt.Sprintf("unsupported role %q", m.Role)}
	}
	if strings.TrimSpace(m.Content) == "" {
		return ErrInvalidMessage{Field: "content", Reason: "cannot be empty"}
	}
	return nil
}

// Conversation is an ordered chat history held by the client side of a chat.
// It is never persisted.
type Conversation struct {
	mu       sync.RWMutex
	messages []Message
}

// NewConversation starts an empty conversation
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message at the end and returns it
func (c *Conversation) Append(role Role, content string) Message {
	m := NewMessage(role, content)
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
	return m
}

// Messages returns a copy of the whole history
func (c *Conversation) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Message{}, c.messages...)
}

// Len returns the number of messages
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Window returns the last n messages
func (c *Conversation) Window(n int) []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Window(c.messages, n)
}

// Context renders the trailing context window sent with the next turn.
// Call it before appending the message being sent.
func (c *Conversation) Context() string {
	return Transcript(c.Window(constants.ChatContextMessages))
}

// Clear drops the whole history
func (c *Conversation) Clear() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}

// Window returns a copy of the last n messages of msgs
func Window(msgs []Message, n int) []Message {
	if n <= 0 {
		return []Message{}
	}
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	return append([]Message{}, msgs...)
}

// Transcript renders messages as "User: ..." and "Assistant: ..." lines
func Transcript(msgs []Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		speaker := "Assistant"
		if m.Role == RoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// Errors

type ErrInvalidMessage struct {
	Field  string
	Reason string
}

func (e ErrInvalidMessage) Error() string {
	return fmt.Sprintf("invalid message: %s - %s", e.Field, e.Reason)
}
