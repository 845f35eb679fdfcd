package seo

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var headTemplate = template.Must(template.New("head").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
{{- with .Meta.Keywords}}
<meta name="keywords" content="{{join . ", "}}">
{{- end}}
<meta name="author" content="{{.Meta.Author}}">
<link rel="canonical" href="{{.Meta.Canonical}}">
<meta name="robots" content="{{.Meta.Robots}}">
<meta name="googlebot" content="{{.Meta.Robots.GoogleBot}}">
<meta property="og:title" content="{{.Meta.OpenGraph.Title}}">
<meta property="og:description" content="{{.Meta.OpenGraph.Description}}">
<meta property="og:url" content="{{.Meta.OpenGraph.URL}}">
<meta property="og:site_name" content="{{.Meta.OpenGraph.SiteName}}">
<meta property="og:locale" content="{{.Meta.OpenGraph.Locale}}">
<meta property="og:type" content="{{.Meta.OpenGraph.Type}}">
{{- range .Meta.OpenGraph.Images}}
<meta property="og:image" content="{{.URL}}">
<meta property="og:image:width" content="{{.Width}}">
<meta property="og:image:height" content="{{.Height}}">
<meta property="og:image:alt" content="{{.Alt}}">
{{- end}}
<meta name="twitter:card" content="{{.Meta.Twitter.Card}}">
<meta name="twitter:title" content="{{.Meta.Twitter.Title}}">
<meta name="twitter:description" content="{{.Meta.Twitter.Description}}">
{{- range .Meta.Twitter.Images}}
<meta name="twitter:image" content="{{.}}">
{{- end}}
{{- with .Meta.Twitter.Creator}}
<meta name="twitter:creator" content="{{.}}">
{{- end}}
{{- with .Meta.Verification.Google}}
<meta name="google-site-verification" content="{{.}}">
{{- end}}
{{- with .Meta.Verification.Bing}}
<meta name="msvalidate.01" content="{{.}}">
{{- end}}
{{- range .Schemas}}
<script type="application/ld+json">{{.}}</script>
{{- end}}
`))

// RenderHead renders meta tags followed by one ld+json script per schema
func RenderHead(meta Metadata, schemas ...any) (string, error) {
	var buf bytes.Buffer
	err := headTemplate.Execute(&buf, struct {
		Meta    Metadata
		Schemas []any
	}{meta, schemas})
	if err != nil {
		return "", fmt.Errorf("failed to render head: %w", err)
	}
	return buf.String(), nil
}
