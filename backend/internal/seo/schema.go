package seo

import (
	"aitools/backend/internal/catalog"
	"aitools/backend/internal/faq"
)

const schemaContext = "https://schema.org"

// Graph is a JSON-LD document holding several nodes
type Graph struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

type WebApplication struct {
	Type                string   `json:"@type"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	URL                 string   `json:"url"`
	ApplicationCategory string   `json:"applicationCategory"`
	OperatingSystem     string   `json:"operatingSystem"`
	Offers              Offer    `json:"offers"`
	FeatureList         []string `json:"featureList,omitempty"`
}

type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
}

type BreadcrumbList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type     string  `json:"@type"`
	Position int     `json:"position"`
	Item     ItemRef `json:"item"`
}

type ItemRef struct {
	ID   string `json:"@id"`
	Name string `json:"name"`
}

type FAQPage struct {
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type HowTo struct {
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Step        []HowToStep `json:"step"`
}

type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type Organization struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	Logo         string       `json:"logo"`
	Description  string       `json:"description"`
	SameAs       []string     `json:"sameAs"`
	ContactPoint ContactPoint `json:"contactPoint"`
}

type ContactPoint struct {
	Type              string   `json:"@type"`
	ContactType       string   `json:"contactType"`
	URL               string   `json:"url"`
	AvailableLanguage []string `json:"availableLanguage"`
}

// ToolSchema builds the structured data graph for a tool page. The FAQ node
// is only present with faqs and the HowTo node only with steps.
func (s Site) ToolSchema(tool catalog.Tool, category catalog.Category, faqs []faq.FAQ, steps []faq.Step) Graph {
	nodes := []any{
		WebApplication{
			Type:                "WebApplication",
			Name:                tool.Title,
			Description:         tool.Description,
			URL:                 s.PageURL(tool.URL),
			ApplicationCategory: "UtilitiesApplication",
			OperatingSystem:     "Web Browser",
			Offers: Offer{
				Type:          "Offer",
				Price:         "0",
				PriceCurrency: "USD",
				Availability:  "https://schema.org/InStock",
			},
			FeatureList: tool.Features,
		},
		s.Breadcrumbs(tool, category),
	}

	if len(faqs) > 0 {
		nodes = append(nodes, FAQSchema(faqs))
	}
	if len(steps) > 0 {
		nodes = append(nodes, HowToSchema(tool.Title, steps))
	}

	return Graph{Context: schemaContext, Graph: nodes}
}

// Breadcrumbs is Home > category > tool
func (s Site) Breadcrumbs(tool catalog.Tool, category catalog.Category) BreadcrumbList {
	categoryName := category.Name
	if categoryName == "" {
		categoryName = tool.Category
	}
	crumbs := []ItemRef{
		{ID: s.URL, Name: "Home"},
		{ID: s.PageURL("/categories/" + tool.Category), Name: categoryName},
		{ID: s.PageURL(tool.URL), Name: tool.Title},
	}

	items := make([]ListItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = ListItem{Type: "ListItem", Position: i + 1, Item: c}
	}
	return BreadcrumbList{Type: "BreadcrumbList", ItemListElement: items}
}

func FAQSchema(faqs []faq.FAQ) FAQPage {
	questions := make([]Question, len(faqs))
	for i, f := range faqs {
		questions[i] = Question{
			Type:           "Question",
			Name:           f.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: f.Answer},
		}
	}
	return FAQPage{Type: "FAQPage", MainEntity: questions}
}

func HowToSchema(toolTitle string, steps []faq.Step) HowTo {
	out := make([]HowToStep, len(steps))
	for i, st := range steps {
		out[i] = HowToStep{Type: "HowToStep", Position: i + 1, Name: st.Name, Text: st.Text}
	}
	return HowTo{
		Type:        "HowTo",
		Name:        "How to use " + toolTitle,
		Description: "Step-by-step guide to using " + toolTitle,
		Step:        out,
	}
}

// OrganizationSchema describes the site owner, for every page
func (s Site) OrganizationSchema() Organization {
	sameAs := []string{}
	if handle := trimHandle(s.TwitterHandle); handle != "" {
		sameAs = append(sameAs, "https://twitter.com/"+handle)
	}
	return Organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        s.Name,
		URL:         s.URL,
		Logo:        s.PageURL("/logo.png"),
		Description: "Free AI tools for writing, design, development, and more. No signup required.",
		SameAs:      sameAs,
		ContactPoint: ContactPoint{
			Type:              "ContactPoint",
			ContactType:       "customer support",
			URL:               s.PageURL("/contact"),
			AvailableLanguage: []string{"English"},
		},
	}
}

func trimHandle(h string) string {
	for len(h) > 0 && h[0] == '@' {
		h = h[1:]
	}
	return h
}
