package actions

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"aitools/backend/internal/adapter"
	"aitools/backend/internal/normalize"
)

// Mode selects which generation backend an action calls
type Mode string

const (
	// ModeChat is a single chat completion against the configured model
	ModeChat Mode = "chat"
	// ModeFreeText is the keyless Pollinations text endpoint
	ModeFreeText Mode = "free_text"
	// ModeImage builds Pollinations image URLs without fetching them
	ModeImage Mode = "image"
)

// Envelope is the result of every action. Exactly one of Result and Error is set.
type Envelope[T any] struct {
	Success    bool                 `json:"success"`
	Result     T                    `json:"result,omitempty"`
	Error      string               `json:"error,omitempty"`
	Confidence normalize.Confidence `json:"confidence,omitempty"`
}

// Succeeded wraps a usable result
func Succeeded[T any](result T, confidence normalize.Confidence) Envelope[T] {
	return Envelope[T]{Success: true, Result: result, Confidence: confidence}
}

// Failed carries a caller-facing message and no result
func Failed[T any](message string) Envelope[T] {
	return Envelope[T]{Error: message}
}

// TextGenerator turns a prompt into raw model output
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageURLBuilder builds image URLs, one per seed
type ImageURLBuilder interface {
	ImageVariations(prompt string, seeds []int64, opts adapter.ImageOptions) []string
}

// Image is one generated image URL and the seed that produced it
type Image struct {
	URL  string `json:"url"`
	Seed int64  `json:"seed"`
}

// Info describes a registered action
type Info struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Tool        string      `json:"tool,omitempty"`
	Description string      `json:"description"`
	Mode        Mode        `json:"mode"`
	Params      []ParamInfo `json:"params"`
}

// ParamInfo describes one accepted parameter
type ParamInfo struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Default  string   `json:"default,omitempty"`
}

// describeParams reflects over a params struct and its defaults
func describeParams(defaults any) []ParamInfo {
	v := reflect.ValueOf(defaults)
	t := v.Type()
	params := make([]ParamInfo, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		p := ParamInfo{Name: name, Type: typeName(f.Type)}
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			switch {
			case rule == "notblank" || rule == "required":
				p.Required = true
			case strings.HasPrefix(rule, "oneof="):
				p.Options = splitOneOf(strings.TrimPrefix(rule, "oneof="))
			}
		}

		if fv := v.Field(i); !fv.IsZero() {
			if fv.Kind() == reflect.Pointer {
				fv = fv.Elem()
			}
			p.Default = fmt.Sprint(fv.Interface())
		}
		params = append(params, p)
	}
	return params
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	case reflect.Int, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// splitOneOf splits a oneof parameter, honoring single-quoted values with spaces
func splitOneOf(param string) []string {
	var (
		out    []string
		quoted bool
		cur    strings.Builder
	)
	for _, r := range param {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
