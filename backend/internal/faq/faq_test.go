package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	faqs := l.ForTool("tweet-generator")
	require.NotEmpty(t, faqs)
	assert.Equal(t, "How does the AI tweet generator work?", faqs[0].Question)
	assert.True(t, l.Has("logo-maker"))
}

func TestForTool_UnknownIsEmptyNotNil(t *testing.T) {
	l := MustDefault()

	faqs := l.ForTool("no-such-tool")
	assert.NotNil(t, faqs)
	assert.Empty(t, faqs)
	assert.False(t, l.Has("no-such-tool"))
}

func TestForTool_ReturnsCopy(t *testing.T) {
	l := MustDefault()

	faqs := l.ForTool("tweet-generator")
	faqs[0].Question = "changed"
	assert.NotEqual(t, "changed", l.ForTool("tweet-generator")[0].Question)
}

func TestHowTo(t *testing.T) {
	l, err := Parse([]byte(`
howto:
  custom-tool:
    - name: Only step
      text: Do the thing.
`))
	require.NoError(t, err)

	assert.Equal(t, []Step{{Name: "Only step", Text: "Do the thing."}}, l.HowTo("custom-tool", "Custom Tool"))

	steps := l.HowTo("other", "Summarizer")
	require.Len(t, steps, 4)
	assert.Equal(t, "Type or paste your content into the Summarizer input field.", steps[0].Text)
	assert.Empty(t, l.ForTool("custom-tool"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("faqs: [not, a, map"))
	assert.Error(t, err)
}
