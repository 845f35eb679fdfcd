package export

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "aitools/backend/pkg/errors"
)

func TestRender_PassThrough(t *testing.T) {
	content := "# Plan\n\n- one\n- two"

	txt, err := Render(FormatText, "Business Plan", content)
	require.NoError(t, err)
	assert.Equal(t, "business-plan.txt", txt.Filename)
	assert.Equal(t, content, string(txt.Data))

	md, err := Render(FormatMarkdown, "Business Plan", content)
	require.NoError(t, err)
	assert.Equal(t, "business-plan.md", md.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", md.ContentType)
	assert.Equal(t, content, string(md.Data))
}

func TestRender_HTML(t *testing.T) {
	content := "# Plan <b>\n\n| Q | A |\n|---|---|\n| 1 | 2 |\n\n- [x] done\n"

	doc, err := Render(FormatHTML, "Plan <b>", content)
	require.NoError(t, err)
	assert.Equal(t, "plan-b.html", doc.Filename)

	page, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	assert.Equal(t, "Plan <b>", page.Find("title").Text())
	assert.Equal(t, 1, page.Find("article h1").Length())
	assert.Equal(t, 1, page.Find("article table").Length(), "tables come from the GFM extension")
	assert.Equal(t, 1, page.Find(`article input[type="checkbox"]`).Length())
	assert.Equal(t, 0, page.Find("article b").Length(), "raw html in content is not rendered")
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render("pdf", "x", "y")
	assert.True(t, apperrors.IsInputError(err))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "ai-tweet-generator-2026", Slug("  AI Tweet Generator (2026)! "))
	assert.Equal(t, "result", Slug("!!!"))
	assert.Equal(t, "result", Slug(""))
}
