package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "aitools/backend/pkg/errors"
)

func TestDefault_IsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Len(t, c.Categories(), 15)
	assert.NotEmpty(t, c.Tools())

	for _, tool := range c.Tools() {
		assert.Equal(t, "/"+tool.Category+"/"+tool.ID, tool.URL)
		assert.NotEmpty(t, tool.Keywords, tool.ID)
	}
}

func TestLookups(t *testing.T) {
	c := MustDefault()

	tool, ok := c.Tool("ai-paraphraser")
	require.True(t, ok)
	assert.Equal(t, "writing", tool.Category)
	assert.Equal(t, IconRefreshCw, tool.Icon)

	byURL, ok := c.ToolByURL("/writing/ai-paraphraser")
	require.True(t, ok)
	assert.Equal(t, tool.ID, byURL.ID)

	cat, ok := c.Category("seo")
	require.True(t, ok)
	assert.Equal(t, "SEO & Analytics", cat.Name)

	_, ok = c.Tool("does-not-exist")
	assert.False(t, ok)

	_, err := c.MustTool("does-not-exist")
	var notFound *apperrors.ErrToolNotFound
	assert.ErrorAs(t, err, &notFound)

	for _, tool := range c.ToolsIn("developer") {
		assert.Equal(t, "developer", tool.Category)
	}
	assert.Empty(t, c.ToolsIn("nope"))
}

func TestSearch(t *testing.T) {
	c := New([]Tool{
		{ID: "a", Title: "Tweet Generator", Description: "Short posts", Category: "writing", URL: "/writing/a", Keywords: []string{"twitter"}},
		{ID: "b", Title: "Logo Maker", Description: "Make a LOGO image", Category: "design", URL: "/design/b"},
		{ID: "c", Title: "Hashtags", Description: "Tags for posts", Category: "social", URL: "/social/c", Keywords: []string{"Instagram Tags"}},
	}, []Category{{ID: "writing"}, {ID: "design"}, {ID: "social"}})

	ids := func(tools []Tool) []string {
		out := []string{}
		for _, t := range tools {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Search("", "")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Search("   ", AllCategories)))
	assert.Equal(t, []string{"b"}, ids(c.Search("logo", "")))
	assert.Equal(t, []string{"a", "c"}, ids(c.Search("POSTS", "")))
	assert.Equal(t, []string{"c"}, ids(c.Search("instagram", "")))
	assert.Equal(t, []string{"c"}, ids(c.Search("posts", "social")))
	assert.Equal(t, []string{"b"}, ids(c.Search("", "design")))
	assert.Empty(t, c.Search("zzz", ""))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := New([]Tool{
		{ID: "a", Category: "writing", URL: "/x"},
		{ID: "a", Category: "writing", URL: "/y"},
		{ID: "b", Category: "ghost", URL: "/x"},
		{ID: "", Category: "writing", URL: "/z"},
	}, []Category{{ID: "writing"}, {ID: "writing"}})

	err := c.Validate()
	var invalid *apperrors.ErrCatalogInvalid
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Problems, 5)
	assert.Contains(t, invalid.Problems, `duplicate tool id "a"`)
	assert.Contains(t, invalid.Problems, `tool "b" references unknown category "ghost"`)
	assert.Contains(t, invalid.Problems, `tool "b" reuses url "/x" of tool "a"`)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeCatalog))
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - id: utilities
    name: Utilities
    icon: wrench
tools:
  - id: uuid-maker
    title: UUID Maker
    description: Make ids
    category: utilities
    url: /utilities/uuid-maker
    icon: no-such-icon
    keywords: [uuid]
`), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	tool, ok := c.Tool("uuid-maker")
	require.True(t, ok)
	assert.Equal(t, IconSparkles, tool.Icon)

	cat, _ := c.Category("utilities")
	assert.Equal(t, IconWrench, cat.Icon)

	_, err = LoadFile(filepath.Join(t.TempDir(), "tools.toml"))
	assert.Error(t, err)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, IconBarChart, ParseIcon("BarChart"))
	assert.Equal(t, IconBarChart, ParseIcon("bar-chart"))
	assert.Equal(t, IconSparkles, ParseIcon("DefinitelyNotAnIcon"))
	assert.Equal(t, IconSparkles, ParseIcon(""))

	_, ok := LookupIcon("nope")
	assert.False(t, ok)

	for _, icon := range Icons() {
		assert.Equal(t, icon, ParseIcon(icon.String()))
	}
	assert.Equal(t, "Sparkles", Icon(250).String())

	b, err := json.Marshal(struct {
		Icon Icon `json:"icon"`
	}{IconRocket})
	require.NoError(t, err)
	assert.JSONEq(t, `{"icon":"Rocket"}`, string(b))
}
