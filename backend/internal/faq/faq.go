package faq

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed faqs.yaml
var defaultData []byte

// FAQ is one question and answer
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Step is one how-to step
type Step struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

type document struct {
	FAQs  map[string][]FAQ  `yaml:"faqs"`
	HowTo map[string][]Step `yaml:"howto"`
}

// Library is a read-only lookup of FAQ and how-to records by tool id
type Library struct {
	faqs  map[string][]FAQ
	howto map[string][]Step
}

// Default returns the embedded library
func Default() (*Library, error) {
	return Parse(defaultData)
}

// MustDefault is Default that panics on a broken embedded file
func MustDefault() *Library {
	l, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded faqs: %v", err))
	}
	return l
}

// Parse decodes a YAML document with top-level faqs and howto maps
func Parse(data []byte) (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode faqs: %w", err)
	}
	l := &Library{faqs: doc.FAQs, howto: doc.HowTo}
	if l.faqs == nil {
		l.faqs = map[string][]FAQ{}
	}
	if l.howto == nil {
		l.howto = map[string][]Step{}
	}
	return l, nil
}

// LoadFile reads a YAML library from disk
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read faqs %s: %w", path, err)
	}
	return Parse(data)
}

// ForTool returns the FAQs for toolID. Unknown ids yield an empty, non-nil list.
func (l *Library) ForTool(toolID string) []FAQ {
	return append([]FAQ{}, l.faqs[toolID]...)
}

// Has reports whether toolID has at least one FAQ
func (l *Library) Has(toolID string) bool {
	return len(l.faqs[toolID]) > 0
}

// HowTo returns the steps written for toolID, or the generic steps for toolName
func (l *Library) HowTo(toolID, toolName string) []Step {
	if steps := l.howto[toolID]; len(steps) > 0 {
		return append([]Step{}, steps...)
	}
	return DefaultHowToSteps(toolName)
}

// DefaultHowToSteps are the generic four steps every tool page can show
func DefaultHowToSteps(toolName string) []Step {
	return []Step{
		{Name: "Enter Your Input", Text: fmt.Sprintf("Type or paste your content into the %s input field.", toolName)},
		{Name: "Configure Options", Text: "Select any available options or settings to customize the output."},
		{Name: "Generate Result", Text: "Click the generate button to create your AI-powered result."},
		{Name: "Copy or Download", Text: "Copy the result to your clipboard or download it for later use."},
	}
}
