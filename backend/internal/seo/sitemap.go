package seo

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"aitools/backend/internal/catalog"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type staticRoute struct {
	path     string
	freq     string
	priority float64
}

var staticRoutes = []staticRoute{
	{"/", ChangeDaily, 1},
	{"/tools", ChangeDaily, 0.9},
	{"/categories", ChangeWeekly, 0.8},
	{"/search", ChangeWeekly, 0.7},
	{"/about", ChangeMonthly, 0.5},
	{"/contact", ChangeMonthly, 0.5},
}

// Priorities for catalog pages
const (
	CategoryPriority = 0.7
	ToolPriority     = 0.8
)

// SitemapEntries lists static routes, then every category, then every tool
func (s Site) SitemapEntries(cat *catalog.Catalog, now time.Time) []SitemapURL {
	lastMod := now.UTC().Format(time.RFC3339)
	entry := func(path, freq string, priority float64) SitemapURL {
		return SitemapURL{
			Loc:        s.PageURL(path),
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   strconv.FormatFloat(priority, 'f', 1, 64),
		}
	}

	entries := make([]SitemapURL, 0, len(staticRoutes)+len(cat.Categories())+len(cat.Tools()))
	for _, r := range staticRoutes {
		entries = append(entries, entry(r.path, r.freq, r.priority))
	}
	for _, c := range cat.Categories() {
		entries = append(entries, entry("/categories/"+c.ID, "", CategoryPriority))
	}
	for _, t := range cat.Tools() {
		entries = append(entries, entry(t.URL, "", ToolPriority))
	}
	return entries
}

// Sitemap renders sitemap.xml
func (s Site) Sitemap(cat *catalog.Catalog, now time.Time) ([]byte, error) {
	set := URLSet{Xmlns: sitemapNamespace, URLs: s.SitemapEntries(cat, now)}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots renders robots.txt: everything allowed, sitemap advertised
func (s Site) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", s.PageURL("/sitemap.xml"))
}
