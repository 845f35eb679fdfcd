package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "aitools/backend/pkg/errors"
)

//go:embed tools.json
var defaultData []byte

// Format is a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// AllCategories is the category filter value that matches every tool
const AllCategories = "all"

// Tool is one catalog entry
type Tool struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	URL         string   `json:"url" yaml:"url"`
	Icon        Icon     `json:"icon" yaml:"icon"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Features    []string `json:"features" yaml:"features"`
}

// Category groups tools sharing a prompt template
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        Icon   `json:"icon" yaml:"icon"`
}

type document struct {
	Categories []Category `json:"categories" yaml:"categories"`
	Tools      []Tool     `json:"tools" yaml:"tools"`
}

// Catalog is the read-only tool and category list. It is safe for concurrent use
// because nothing mutates it after construction.
type Catalog struct {
	tools      []Tool
	categories []Category
	toolByID   map[string]int
	toolByURL  map[string]int
	categoryBy map[string]int
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultData, FormatJSON)
}

// MustDefault is Default for package-level wiring and tests
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog document. It does not validate; see Validate.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(doc.Tools, doc.Categories), nil
}

// LoadFile reads a .json, .yaml or .yml catalog
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Parse(data, FormatJSON)
	case ".yaml", ".yml":
		return Parse(data, FormatYAML)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// New builds a catalog from already decoded records. On duplicate ids or urls the
// first record wins for lookups.
func New(tools []Tool, categories []Category) *Catalog {
	c := &Catalog{
		tools:      append([]Tool(nil), tools...),
		categories: append([]Category(nil), categories...),
		toolByID:   make(map[string]int, len(tools)),
		toolByURL:  make(map[string]int, len(tools)),
		categoryBy: make(map[string]int, len(categories)),
	}
	for i, t := range c.tools {
		if _, ok := c.toolByID[t.ID]; !ok {
			c.toolByID[t.ID] = i
		}
		if _, ok := c.toolByURL[t.URL]; !ok {
			c.toolByURL[t.URL] = i
		}
	}
	for i, cat := range c.categories {
		if _, ok := c.categoryBy[cat.ID]; !ok {
			c.categoryBy[cat.ID] = i
		}
	}
	return c
}

// Tools returns every tool in catalog order
func (c *Catalog) Tools() []Tool {
	return append([]Tool(nil), c.tools...)
}

// Categories returns every category in catalog order
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Tool looks a tool up by id
func (c *Catalog) Tool(id string) (Tool, bool) {
	i, ok := c.toolByID[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// MustTool is Tool returning ErrToolNotFound on a miss
func (c *Catalog) MustTool(id string) (Tool, error) {
	t, ok := c.Tool(id)
	if !ok {
		return Tool{}, apperrors.NewToolNotFound(id)
	}
	return t, nil
}

// ToolByURL looks a tool up by its canonical path
func (c *Catalog) ToolByURL(url string) (Tool, bool) {
	i, ok := c.toolByURL[url]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// Category looks a category up by id
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.categoryBy[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// ToolsIn returns the tools of one category in catalog order
func (c *Catalog) ToolsIn(categoryID string) []Tool {
	out := []Tool{}
	for _, t := range c.tools {
		if t.Category == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// Search filters tools whose title, description or any keyword contains query,
// ignoring case. A blank query matches everything. categoryID narrows the result
// unless it is empty or AllCategories.
func (c *Catalog) Search(query, categoryID string) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	filterCategory := categoryID != "" && categoryID != AllCategories

	out := []Tool{}
	for _, t := range c.tools {
		if filterCategory && t.Category != categoryID {
			continue
		}
		if q != "" && !t.matches(q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (t Tool) matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(t.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(t.Description), lowerQuery) {
		return true
	}
	for _, k := range t.Keywords {
		if strings.Contains(strings.ToLower(k), lowerQuery) {
			return true
		}
	}
	return false
}

// Validate checks the catalog invariants and reports every violation at once
func (c *Catalog) Validate() error {
	var problems []string

	seenCategory := make(map[string]bool, len(c.categories))
	for i, cat := range c.categories {
		if strings.TrimSpace(cat.ID) == "" {
			problems = append(problems, fmt.Sprintf("category #%d has an empty id", i))
			continue
		}
		if seenCategory[cat.ID] {
			problems = append(problems, fmt.Sprintf("duplicate category id %q", cat.ID))
		}
		seenCategory[cat.ID] = true
	}

	seenID := make(map[string]bool, len(c.tools))
	seenURL := make(map[string]string, len(c.tools))
	for i, t := range c.tools {
		if strings.TrimSpace(t.ID) == "" {
			problems = append(problems, fmt.Sprintf("tool #%d has an empty id", i))
			continue
		}
		if seenID[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate tool id %q", t.ID))
		}
		seenID[t.ID] = true

		if t.URL == "" {
			problems = append(problems, fmt.Sprintf("tool %q has an empty url", t.ID))
		} else if other, ok := seenURL[t.URL]; ok {
			problems = append(problems, fmt.Sprintf("tool %q reuses url %q of tool %q", t.ID, t.URL, other))
		} else {
			seenURL[t.URL] = t.ID
		}

		if !seenCategory[t.Category] {
			problems = append(problems, fmt.Sprintf("tool %q references unknown category %q", t.ID, t.Category))
		}
	}

	if len(problems) > 0 {
		return apperrors.NewCatalogInvalid(problems)
	}
	return nil
}
