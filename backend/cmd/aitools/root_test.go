package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aitools/backend/internal/app"
	"aitools/backend/internal/recent"
	"aitools/backend/pkg/config"
)

// completionServer answers chat completions with reply and records user prompts
type completionServer struct {
	*httptest.Server
	mu      sync.Mutex
	prompts []string
}

func newCompletionServer(t *testing.T, reply string) *completionServer {
	t.Helper()
	cs := &completionServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		cs.mu.Lock()
		if len(req.Messages) > 0 {
			cs.prompts = append(cs.prompts, req.Messages[len(req.Messages)-1].Content)
		}
		cs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "1",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *completionServer) lastPrompt() string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.prompts) == 0 {
		return ""
	}
	return cs.prompts[len(cs.prompts)-1]
}

func testOptions(t *testing.T, chatURL string, mutate ...func(*config.Config)) *cliOptions {
	t.Helper()
	if chatURL == "" {
		chatURL = "http://127.0.0.1:1"
	}
	cfg := &config.Config{
		OpenAIBaseURL:        chatURL,
		ModelID:              "test-model",
		PollinationsTextURL:  "http://127.0.0.1:1",
		PollinationsImageURL: "https://image.example",
		SiteURL:              "https://tools.example",
		SiteName:             "30tools AI Tools",
		RecentStore:          config.RecentStoreMemory,
		IndexNowKey:          "k",
		IndexNowEndpoint:     "http://127.0.0.1:1",
	}
	for _, m := range mutate {
		m(cfg)
	}
	return &cliOptions{
		clientID: "cli",
		logger:   zap.NewNop(),
		build: func(ctx context.Context, log *zap.Logger) (*app.App, error) {
			return app.New(ctx, cfg, log)
		},
	}
}

func runCLI(t *testing.T, opts *cliOptions, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommandWith(opts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := execute(context.Background(), opts, root)
	return out.String(), err
}

func TestToolsCommands(t *testing.T) {
	opts := testOptions(t, "")

	out, err := runCLI(t, opts, "", "tools", "list", "--category", "writing")
	require.NoError(t, err)
	assert.Contains(t, out, "ai-paraphraser")
	assert.NotContains(t, out, "logo-maker")

	out, err = runCLI(t, opts, "", "tools", "search", "tweet")
	require.NoError(t, err)
	assert.Contains(t, out, "tweet-generator")

	out, err = runCLI(t, opts, "", "tools", "show", "ai-paraphraser")
	require.NoError(t, err)
	assert.Contains(t, out, "https://tools.example/writing/ai-paraphraser")
	assert.Contains(t, out, "Q: ")

	_, err = runCLI(t, opts, "", "tools", "show", "missing")
	assert.Error(t, err)

	_, err = runCLI(t, opts, "", "tools", "list", "--category", "nope")
	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	opts := testOptions(t, "")

	out, err := runCLI(t, opts, "", "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: ")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories":[{"id":"a"}],"tools":[{"id":"x","url":"/x","category":"b"},{"id":"x","url":"/x","category":"a"}]}`), 0o644))
	_, err = runCLI(t, opts, "", "catalog", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate tool id "x"`)
	assert.Contains(t, err.Error(), `unknown category "b"`)
}

func TestActionsCommand(t *testing.T) {
	out, err := runCLI(t, testOptions(t, ""), "", "actions")

	require.NoError(t, err)
	assert.Contains(t, out, "paraphrase")
	assert.Contains(t, out, "text")
	assert.Contains(t, out, "tone?")
}

func TestRunCommand(t *testing.T) {
	cs := newCompletionServer(t, "first---second---third")

	out, err := runCLI(t, testOptions(t, cs.URL), "", "run", "tweets", "-p", "topic=gophers", "-p", "count=3")

	require.NoError(t, err)
	assert.Equal(t, "1. first\n2. second\n3. third\n", out)
	assert.Contains(t, cs.lastPrompt(), "gophers")
}

func TestRunCommand_SummaryMetrics(t *testing.T) {
	cs := newCompletionServer(t, "two words")

	out, err := runCLI(t, testOptions(t, cs.URL), "", "run", "summarize", "-p", "text=one two three four")

	require.NoError(t, err)
	assert.Contains(t, out, "2 words, 9 characters, 50% shorter")
}

func TestRunCommand_Errors(t *testing.T) {
	opts := testOptions(t, "")

	_, err := runCLI(t, opts, "", "run", "tweets", "-p", "topic")
	assert.ErrorContains(t, err, "want key=value")

	_, err = runCLI(t, opts, "", "run", "tweets")
	assert.ErrorContains(t, err, "must not be blank")

	// Unreachable provider: failed envelope, exit code 2
	_, err = runCLI(t, opts, "", "run", "tweets", "-p", "topic=x")
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.code)
}

func TestImageCommand(t *testing.T) {
	out, err := runCLI(t, testOptions(t, ""), "", "image", "red", "fox", "--count", "2", "--seed", "40", "--size", "banner")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "40\thttps://image.example/prompt/red%20fox?width=1200&height=630"))
	assert.True(t, strings.HasPrefix(lines[1], "41\t"))
}

func TestImageCommand_Download(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nrest")
	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(png)
	}))
	defer images.Close()

	dir := filepath.Join(t.TempDir(), "out")
	opts := testOptions(t, "", func(c *config.Config) { c.PollinationsImageURL = images.URL })

	_, err := runCLI(t, opts, "", "image", "cat", "--count", "2", "--seed", "7", "--download", dir)

	require.NoError(t, err)
	for _, name := range []string{"image-7.png", "image-8.png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, png, data)
	}
}

func TestChatCommand(t *testing.T) {
	cs := newCompletionServer(t, "hello human")

	out, err := runCLI(t, testOptions(t, cs.URL), "hi there\nhow are you\n/exit\n", "chat")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "hello human"))
	// The second turn carries the first as context
	assert.Contains(t, cs.lastPrompt(), "User: hi there\nAssistant: hello human")
	assert.Contains(t, cs.lastPrompt(), "how are you")
}

func TestGenerateAndRecent(t *testing.T) {
	text := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a fresh take"))
	}))
	defer text.Close()

	store := filepath.Join(t.TempDir(), "recent.db")
	mutate := func(c *config.Config) {
		c.PollinationsTextURL = text.URL
		c.RecentStore = config.RecentStoreBolt
		c.RecentStorePath = store
	}

	out, err := runCLI(t, testOptions(t, "", mutate), "", "generate", "ai-paraphraser", "rewrite", "this")
	require.NoError(t, err)
	assert.Equal(t, "a fresh take\n", out)

	out, err = runCLI(t, testOptions(t, "", mutate), "", "recent")
	require.NoError(t, err)
	assert.Contains(t, out, "ai-paraphraser")

	_, err = runCLI(t, testOptions(t, "", mutate), "", "recent", "--clear")
	require.NoError(t, err)

	out, err = runCLI(t, testOptions(t, "", mutate), "", "recent", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSiteCommands(t *testing.T) {
	opts := testOptions(t, "")

	out, err := runCLI(t, opts, "", "robots")
	require.NoError(t, err)
	assert.Contains(t, out, "Sitemap: https://tools.example/sitemap.xml")

	out, err = runCLI(t, opts, "", "sitemap")
	require.NoError(t, err)
	assert.Contains(t, out, "<urlset")
}

func TestIndexNowCommand(t *testing.T) {
	var host string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Host string `json:"host"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		host = body.Host
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	opts := testOptions(t, "", func(c *config.Config) { c.IndexNowEndpoint = srv.URL })
	out, err := runCLI(t, opts, "", "indexnow", "https://tools.example/a")

	require.NoError(t, err)
	assert.Equal(t, "tools.example", host)
	assert.Contains(t, out, "submitted 1 url(s), status 200")
}

func TestFailedCommandClosesStore(t *testing.T) {
	store := filepath.Join(t.TempDir(), "recent.db")
	opts := testOptions(t, "", func(c *config.Config) {
		c.RecentStore = config.RecentStoreBolt
		c.RecentStorePath = store
	})

	// Unreachable provider: the command fails with exit code 2
	_, err := runCLI(t, opts, "", "run", "tweets", "-p", "topic=x")
	var exitErr exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Nil(t, opts.app)

	// bbolt holds an exclusive file lock until closed
	s, err := recent.OpenBoltStore(store)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
