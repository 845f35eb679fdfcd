package state

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_AppendAndContext(t *testing.T) {
	c := NewConversation()
	assert.Equal(t, "", c.Context())

	c.Append(RoleUser, "Hi")
	c.Append(RoleAssistant, "Hello! How can I help?")

	assert.Equal(t, "User: Hi\nAssistant: Hello! How can I help?", c.Context())

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
	assert.False(t, msgs[1].Timestamp.Before(msgs[0].Timestamp))
}

func TestConversation_ContextKeepsLastTen(t *testing.T) {
	c := NewConversation()
	for i := 0; i < 14; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		c.Append(role, fmt.Sprintf("m%d", i))
	}

	lines := strings.Split(c.Context(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "User: m4", lines[0])
	assert.Equal(t, "Assistant: m13", lines[9])
	assert.Equal(t, 14, c.Len())
}

func TestConversation_Clear(t *testing.T) {
	c := NewConversation()
	c.Append(RoleUser, "Hi")
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Messages())
	assert.Equal(t, "", c.Context())
}

func TestWindow(t *testing.T) {
	msgs := []Message{NewMessage(RoleUser, "a"), NewMessage(RoleAssistant, "b"), NewMessage(RoleUser, "c")}

	assert.Len(t, Window(msgs, 10), 3)
	assert.Equal(t, "b", Window(msgs, 2)[0].Content)
	assert.Empty(t, Window(msgs, 0))

	w := Window(msgs, 3)
	w[0].Content = "changed"
	assert.Equal(t, "a", msgs[0].Content)
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, NewMessage(RoleUser, "hello").Validate())

	err := NewMessage("system", "hello").Validate()
	var invalid ErrInvalidMessage
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "role", invalid.Field)

	err = NewMessage(RoleAssistant, "   ").Validate()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "content", invalid.Field)
}
