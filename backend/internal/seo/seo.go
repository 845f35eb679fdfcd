package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"aitools/backend/internal/catalog"
)

// Length limits search engines display without truncation
const (
	MaxTitleLength       = 60
	MaxDescriptionLength = 160
)

const callToAction = " Try it free, no signup required."

// Site holds the site-wide values every page's metadata is derived from
type Site struct {
	URL                string
	Name               string
	TwitterHandle      string
	GoogleVerification string
	BingVerification   string
}

// NewSite creates a Site, trimming any trailing slash from url
func NewSite(url, name, twitterHandle string) Site {
	return Site{
		URL:           strings.TrimRight(url, "/"),
		Name:          name,
		TwitterHandle: twitterHandle,
	}
}

// Metadata is everything rendered into a tool page's head
type Metadata struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Keywords     []string     `json:"keywords"`
	Author       string       `json:"author"`
	Canonical    string       `json:"canonical"`
	OpenGraph    OpenGraph    `json:"openGraph"`
	Twitter      TwitterCard  `json:"twitter"`
	Robots       Robots       `json:"robots"`
	Verification Verification `json:"verification"`
}

type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	SiteName    string    `json:"siteName"`
	Locale      string    `json:"locale"`
	Type        string    `json:"type"`
	Images      []OGImage `json:"images"`
}

type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Creator     string   `json:"creator"`
}

// Robots are the indexing directives for a page
type Robots struct {
	Index     bool      `json:"index"`
	Follow    bool      `json:"follow"`
	GoogleBot GoogleBot `json:"googleBot"`
}

type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxVideoPreview int    `json:"maxVideoPreview"`
	MaxImagePreview string `json:"maxImagePreview"`
	MaxSnippet      int    `json:"maxSnippet"`
}

// Verification carries search console ownership tokens
type Verification struct {
	Google string `json:"google,omitempty"`
	Bing   string `json:"bing,omitempty"`
}

// String renders the robots meta content
func (r Robots) String() string {
	return directives(r.Index, r.Follow)
}

// String renders the googlebot meta content
func (g GoogleBot) String() string {
	return fmt.Sprintf("%s, max-video-preview:%d, max-image-preview:%s, max-snippet:%d",
		directives(g.Index, g.Follow), g.MaxVideoPreview, g.MaxImagePreview, g.MaxSnippet)
}

func directives(index, follow bool) string {
	parts := []string{"noindex", "nofollow"}
	if index {
		parts[0] = "index"
	}
	if follow {
		parts[1] = "follow"
	}
	return strings.Join(parts, ", ")
}

// DefaultRobots allows indexing with unrestricted previews
func DefaultRobots() Robots {
	return Robots{
		Index:  true,
		Follow: true,
		GoogleBot: GoogleBot{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
	}
}

// PageURL joins the site URL and a site-relative path
func (s Site) PageURL(path string) string {
	if path == "" || path == "/" {
		return s.URL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.URL + path
}

// OGImageURL is the shared social preview image
func (s Site) OGImageURL() string {
	return s.PageURL("/og-image.jpg")
}

// ToolMetadata builds the head metadata for a tool page
func (s Site) ToolMetadata(tool catalog.Tool) Metadata {
	description := OptimizeDescription(tool.Description)
	canonical := s.PageURL(tool.URL)
	keywords := append([]string{}, tool.Keywords...)

	return Metadata{
		Title:       OptimizeTitle(tool.Title, s.Name),
		Description: description,
		Keywords:    keywords,
		Author:      s.Name,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       tool.Title + " | Free AI Tool",
			Description: description,
			URL:         canonical,
			SiteName:    s.Name,
			Locale:      "en_US",
			Type:        "website",
			Images: []OGImage{
				{URL: s.OGImageURL(), Width: 1200, Height: 630, Alt: tool.Title},
			},
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       tool.Title + " - Free AI Tool",
			Description: description,
			Images:      []string{s.OGImageURL()},
			Creator:     s.TwitterHandle,
		},
		Robots: DefaultRobots(),
		Verification: Verification{
			Google: s.GoogleVerification,
			Bing:   s.BingVerification,
		},
	}
}

// OptimizeTitle appends " | siteName", truncating title with an ellipsis
// so the whole stays within MaxTitleLength runes.
func OptimizeTitle(title, siteName string) string {
	suffix := " | " + siteName
	suffixLen := utf8.RuneCountInString(suffix)

	if utf8.RuneCountInString(title)+suffixLen <= MaxTitleLength {
		return title + suffix
	}

	keep := MaxTitleLength - suffixLen - 3
	if keep < 0 {
		keep = 0
	}
	return truncateRunes(title, keep) + "..." + suffix
}

// OptimizeDescription appends a call to action when it fits and caps the
// result at MaxDescriptionLength runes.
func OptimizeDescription(description string) string {
	out := description
	if utf8.RuneCountInString(out)+utf8.RuneCountInString(callToAction) <= MaxDescriptionLength {
		out += callToAction
	}
	if utf8.RuneCountInString(out) > MaxDescriptionLength {
		out = truncateRunes(out, MaxDescriptionLength-3) + "..."
	}
	return out
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
