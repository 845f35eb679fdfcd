package actions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aitools/backend/internal/adapter"
	"aitools/backend/internal/catalog"
	"aitools/backend/internal/metrics"
	"aitools/backend/internal/normalize"
	"aitools/backend/internal/prompt"
	apperrors "aitools/backend/pkg/errors"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func newTestDispatcher(chat, free TextGenerator, opts ...Option) *Dispatcher {
	images := adapter.NewPollinationsClient("https://text.example", "https://image.example")
	opts = append([]Option{WithLogger(zap.NewNop())}, opts...)
	return NewDispatcher(chat, free, images, catalog.MustDefault(), opts...)
}

func TestDispatch_StartupIdeas(t *testing.T) {
	chat := &fakeGenerator{reply: "A---B---C"}
	d := newTestDispatcher(chat, nil)

	env, err := d.Dispatch(context.Background(), "startup-ideas", map[string]any{
		"keyword": "fintech",
		"count":   3,
	})

	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, []string{"A", "B", "C"}, env.Result)
	assert.Empty(t, env.Error)
	assert.Contains(t, chat.lastPrompt(), `Generate 3 innovative startup ideas around "fintech"`)
}

func TestDispatch_BlankInputRejectedBeforeCall(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
	}{
		{"missing", map[string]any{}},
		{"empty", map[string]any{"text": ""}},
		{"whitespace", map[string]any{"text": "  \n\t"}},
		{"nil", map[string]any{"text": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &fakeGenerator{reply: "unused"}
			d := newTestDispatcher(chat, nil)

			env, err := d.Dispatch(context.Background(), "paraphrase", tt.params)

			require.Error(t, err)
			assert.True(t, apperrors.IsInputError(err))
			var invalid *apperrors.ErrInvalidInput
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "text", invalid.Field)
			assert.Equal(t, "must not be blank", invalid.Reason)
			assert.False(t, env.Success)
			assert.Equal(t, 0, chat.calls())
		})
	}
}

func TestDispatch_ProviderStatusIsLoggedNotReturned(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	chat := adapter.NewLLMAdapter(srv.URL, "", "test-model", adapter.WithLLMLogger(zap.NewNop()))
	d := newTestDispatcher(chat, nil, WithLogger(zap.New(core)))

	env, err := d.Dispatch(context.Background(), "paraphrase", map[string]any{"text": "hello world"})

	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Equal(t, "Failed to paraphrase text", env.Error)
	assert.Nil(t, env.Result)
	assert.NotContains(t, env.Error, "upstream exploded")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "failed generations are not retried")

	entries := logs.FilterMessage("Generation failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "paraphrase", fields["action"])
	assert.Equal(t, "chat", fields["mode"])
	assert.EqualValues(t, http.StatusInternalServerError, fields["status_code"])
}

func TestDispatch_ImageSeedsDifferOnlyInSeed(t *testing.T) {
	d := newTestDispatcher(nil, nil)

	env, err := d.Dispatch(context.Background(), "image", map[string]any{
		"prompt": "a lighthouse at dusk",
		"seeds":  []any{10, 11, 12},
	})

	require.NoError(t, err)
	require.True(t, env.Success)
	images, ok := env.Result.([]Image)
	require.True(t, ok)
	require.Len(t, images, 3)

	var base url.Values
	for i, img := range images {
		assert.Equal(t, int64(10+i), img.Seed)
		u, err := url.Parse(img.URL)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, []string{"10", "11", "12"}[i], q.Get("seed"))
		q.Del("seed")
		if base == nil {
			base = q
			assert.Equal(t, "/prompt/a lighthouse at dusk", u.Path)
			continue
		}
		assert.Equal(t, base, q)
	}
}

func TestDispatch_LogoImageUsesLogoPreset(t *testing.T) {
	d := newTestDispatcher(nil, nil)

	env, err := d.Dispatch(context.Background(), "logo-image", map[string]any{
		"prompt": "coffee shop",
		"count":  "2",
		"seed":   100,
	})

	require.NoError(t, err)
	images := env.Result.([]Image)
	require.Len(t, images, 2)
	assert.Equal(t, int64(100), images[0].Seed)
	assert.Equal(t, int64(101), images[1].Seed)

	u, err := url.Parse(images[0].URL)
	require.NoError(t, err)
	assert.Equal(t, "512", u.Query().Get("width"))
	assert.Contains(t, u.Path, LogoPrompt("coffee shop"))
}

func TestDispatch_ImageRejectsUnknownSize(t *testing.T) {
	d := newTestDispatcher(nil, nil)

	_, err := d.Dispatch(context.Background(), "image", map[string]any{"prompt": "x", "size": "poster"})

	var invalid *apperrors.ErrInvalidInput
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "size", invalid.Field)
}

func TestDispatch_CountClamping(t *testing.T) {
	promptFor := func(t *testing.T, count any) string {
		t.Helper()
		chat := &fakeGenerator{reply: "x"}
		d := newTestDispatcher(chat, nil)
		params := map[string]any{"topic": "go"}
		if count != nil {
			params["count"] = count
		}
		_, err := d.Dispatch(context.Background(), "tweets", params)
		require.NoError(t, err)
		return chat.lastPrompt()
	}

	assert.Equal(t, promptFor(t, 1), promptFor(t, 0), "count=0 behaves like the minimum")
	assert.Equal(t, promptFor(t, 1), promptFor(t, -4))
	assert.Equal(t, promptFor(t, 5), promptFor(t, 99), "counts above the range use the maximum")
	assert.Equal(t, promptFor(t, 4), promptFor(t, "4"), "numeric strings are accepted")
	assert.Contains(t, promptFor(t, nil), "Generate 3 engaging tweets")
}

func TestDispatch_NonNumericCountRejected(t *testing.T) {
	chat := &fakeGenerator{reply: "x"}
	d := newTestDispatcher(chat, nil)

	_, err := d.Dispatch(context.Background(), "tweets", map[string]any{"topic": "go", "count": "three"})

	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
	assert.Equal(t, 0, chat.calls())
}

func TestDispatch_EnumRejected(t *testing.T) {
	chat := &fakeGenerator{reply: "x"}
	d := newTestDispatcher(chat, nil)

	_, err := d.Dispatch(context.Background(), "paraphrase", map[string]any{"text": "hi", "tone": "angry"})

	var invalid *apperrors.ErrInvalidInput
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "tone", invalid.Field)
	assert.Equal(t, "must be one of: formal, casual, funny", invalid.Reason)
	assert.Equal(t, 0, chat.calls())
}

func TestDispatch_UnknownAction(t *testing.T) {
	d := newTestDispatcher(&fakeGenerator{}, nil)

	_, err := d.Dispatch(context.Background(), "teleport", nil)

	var unknown *apperrors.ErrUnknownAction
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "teleport", unknown.Action)
}

func TestDispatch_EmptyOutputs(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		params  map[string]any
		reply   string
		failure string
	}{
		{"blank text", "paraphrase", map[string]any{"text": "hi"}, "   \n", "Failed to paraphrase text"},
		{"only delimiters", "tweets", map[string]any{"topic": "go"}, "--- \n---", "Failed to generate tweets"},
		{"no hashtags", "hashtags", map[string]any{"description": "cats"}, "\n\t", "Failed to generate hashtags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher(&fakeGenerator{reply: tt.reply}, nil)

			env, err := d.Dispatch(context.Background(), tt.action, tt.params)

			require.NoError(t, err)
			assert.False(t, env.Success)
			assert.Equal(t, tt.failure, env.Error)
			assert.Nil(t, env.Result)
		})
	}
}

func TestDispatch_Hashtags(t *testing.T) {
	chat := &fakeGenerator{reply: "#go  #golang\n#gopher #code"}
	d := newTestDispatcher(chat, nil)

	env, err := d.Dispatch(context.Background(), "hashtags", map[string]any{"description": "go tips", "platform": "twitter"})

	require.NoError(t, err)
	assert.Equal(t, []string{"#go", "#golang", "#gopher", "#code"}, env.Result, "limits are not enforced on the result")
	assert.Contains(t, chat.lastPrompt(), "Generate 2 relevant hashtags")
}

func TestDispatch_StructuredConfidence(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		params     map[string]any
		reply      string
		confidence normalize.Confidence
	}{
		{
			name:       "fenced json",
			action:     "seo-meta",
			params:     map[string]any{"content": "go tips"},
			reply:      "```json\n{\"title\":\"Go Tips\",\"description\":\"Learn Go\"}\n```",
			confidence: normalize.ConfidenceParsed,
		},
		{
			name:       "unreadable quiz",
			action:     "quiz",
			params:     map[string]any{"content": "photosynthesis"},
			reply:      "I cannot help with that.",
			confidence: normalize.ConfidencePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher(&fakeGenerator{reply: tt.reply}, nil)

			env, err := d.Dispatch(context.Background(), tt.action, tt.params)

			require.NoError(t, err)
			assert.True(t, env.Success)
			assert.Equal(t, tt.confidence, env.Confidence)
			assert.NotNil(t, env.Result)
		})
	}
}

func TestDispatch_CommitMessageTrimmed(t *testing.T) {
	d := newTestDispatcher(&fakeGenerator{reply: "\n  feat: add cache  \n"}, nil)

	env, err := d.Dispatch(context.Background(), "commit-message", map[string]any{"diff": "+cache"})

	require.NoError(t, err)
	assert.Equal(t, "feat: add cache", env.Result)
}

func TestDispatch_ChatHistoryWindow(t *testing.T) {
	history := make([]any, 0, 12)
	for i := 0; i < 12; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, map[string]any{
			"id":        "m",
			"role":      role,
			"content":   "turn-" + string(rune('a'+i)),
			"timestamp": "2026-01-02T15:04:05Z",
		})
	}
	chat := &fakeGenerator{reply: "sure"}
	d := newTestDispatcher(chat, nil)

	env, err := d.Dispatch(context.Background(), "chat", map[string]any{"message": "and now?", "history": history})

	require.NoError(t, err)
	assert.True(t, env.Success)
	got := chat.lastPrompt()
	assert.NotContains(t, got, "turn-a")
	assert.NotContains(t, got, "turn-b")
	assert.Contains(t, got, "Previous conversation:\nUser: turn-c\nAssistant: turn-d")
	assert.Contains(t, got, "Assistant: turn-l\n")
	assert.Contains(t, got, "User message: and now?")
}

func TestDispatch_ChatWithoutHistory(t *testing.T) {
	chat := &fakeGenerator{reply: "hello"}
	d := newTestDispatcher(chat, nil)

	_, err := d.Dispatch(context.Background(), "persona-chat", map[string]any{"message": "hi", "persona": "Ada Lovelace"})

	require.NoError(t, err)
	got := chat.lastPrompt()
	assert.NotContains(t, got, "Previous conversation")
	assert.True(t, strings.HasPrefix(got, "You are roleplaying as Ada Lovelace."))
}

func TestDispatch_Universal(t *testing.T) {
	chat := &fakeGenerator{reply: "wrong backend"}
	free := &fakeGenerator{reply: "Here are three taglines"}
	d := newTestDispatcher(chat, free)

	env, err := d.Generate(context.Background(), "slogan-generator", "eco sneakers")

	require.NoError(t, err)
	assert.Equal(t, "Here are three taglines", env.Result)
	assert.Equal(t, 0, chat.calls())

	st, ok := catalog.MustDefault().Tool("slogan-generator")
	require.True(t, ok)
	assert.Equal(t, prompt.Resolve(st.ID, st.Title, st.Description, st.Category, "eco sneakers"), free.lastPrompt())
}

func TestDispatch_UniversalUnknownTool(t *testing.T) {
	free := &fakeGenerator{reply: "x"}
	d := newTestDispatcher(nil, free)

	_, err := d.Generate(context.Background(), "no-such-tool", "input")

	var notFound *apperrors.ErrToolNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, free.calls())
}

func TestDispatch_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.MustNew(reg)
	d := newTestDispatcher(&fakeGenerator{reply: "a---b"}, nil, WithMetrics(rec))

	_, err := d.Dispatch(context.Background(), "tweets", map[string]any{"topic": "go"})
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), "tweets", map[string]any{})
	require.Error(t, err)

	expected := `
# HELP aitools_rejected_requests_total Requests rejected before any outbound call
# TYPE aitools_rejected_requests_total counter
aitools_rejected_requests_total{action="tweets",reason="invalid_input"} 1
# HELP aitools_generations_total Completed generation actions by outcome
# TYPE aitools_generations_total counter
aitools_generations_total{action="tweets",mode="chat",outcome="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"aitools_rejected_requests_total", "aitools_generations_total"))
}

func TestActions_Registry(t *testing.T) {
	d := newTestDispatcher(nil, nil)
	cat := catalog.MustDefault()

	infos := d.Actions()
	require.NotEmpty(t, infos)
	for i, info := range infos {
		if i > 0 {
			assert.Less(t, infos[i-1].Name, info.Name)
		}
		assert.NotEmpty(t, info.Description, info.Name)
		if info.Tool != "" {
			_, ok := cat.Tool(info.Tool)
			assert.True(t, ok, "%s references unknown tool %s", info.Name, info.Tool)
		}
	}

	info, ok := d.Lookup("paraphrase")
	require.True(t, ok)
	assert.Equal(t, ModeChat, info.Mode)
	require.Len(t, info.Params, 2)
	assert.Equal(t, ParamInfo{Name: "text", Type: "string", Required: true}, info.Params[0])
	assert.Equal(t, ParamInfo{Name: "tone", Type: "string", Options: []string{"formal", "casual", "funny"}, Default: "casual"}, info.Params[1])

	info, ok = d.Lookup("image")
	require.True(t, ok)
	assert.Equal(t, ModeImage, info.Mode)

	_, ok = d.Lookup("nope")
	assert.False(t, ok)
}

func TestSplitOneOf(t *testing.T) {
	assert.Equal(t, []string{"haiku", "free verse", "sonnet"}, splitOneOf("haiku 'free verse' sonnet"))
	assert.Empty(t, splitOneOf(""))
}
