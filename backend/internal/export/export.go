package export

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	apperrors "aitools/backend/pkg/errors"
)

// Format is a download format for a generated result
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Formats lists the supported download formats
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML}
}

// Document is a rendered download
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article>
{{.Body}}</article>
</body>
</html>
`))

// Render turns a generated result into a downloadable document. Text and
// markdown pass through unchanged; html renders the content as markdown.
func Render(format Format, title, content string) (Document, error) {
	name := Slug(title)

	switch Format(strings.ToLower(string(format))) {
	case FormatText, "":
		return Document{Filename: name + ".txt", ContentType: "text/plain; charset=utf-8", Data: []byte(content)}, nil
	case FormatMarkdown:
		return Document{Filename: name + ".md", ContentType: "text/markdown; charset=utf-8", Data: []byte(content)}, nil
	case FormatHTML:
		var body bytes.Buffer
		if err := markdown.Convert([]byte(content), &body); err != nil {
			return Document{}, fmt.Errorf("failed to convert markdown: %w", err)
		}

		var page bytes.Buffer
		err := pageTemplate.Execute(&page, struct {
			Title string
			Body  template.HTML
		}{title, template.HTML(body.String())})
		if err != nil {
			return Document{}, fmt.Errorf("failed to render page: %w", err)
		}
		return Document{Filename: name + ".html", ContentType: "text/html; charset=utf-8", Data: page.Bytes()}, nil
	default:
		return Document{}, apperrors.NewInvalidInput("format", fmt.Sprintf("must be one of: %s, %s, %s", FormatText, FormatMarkdown, FormatHTML))
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug makes a filename stem from title, "result" when nothing is left
func Slug(title string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if s == "" {
		return "result"
	}
	return s
}
