package normalize

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")

// extractJSON finds a JSON document in raw. It accepts the whole text, the first
// fenced code block, or the outermost object/array span, in that order.
func extractJSON(raw string) (interface{}, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}

	if v, ok := decodeJSON(text); ok {
		return v, true
	}

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		if v, ok := decodeJSON(strings.TrimSpace(m[1])); ok {
			return v, true
		}
	}

	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(text, pair[0])
		end := strings.LastIndexByte(text, pair[1])
		if start >= 0 && end > start {
			if v, ok := decodeJSON(text[start : end+1]); ok {
				return v, true
			}
		}
	}

	return nil, false
}

func decodeJSON(s string) (interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return v, true
	}
	return nil, false
}

// decodeInto maps a decoded JSON value onto out. Numbers given as strings and
// similar near-misses are accepted.
func decodeInto(in interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		DecodeHook:       letterIndexHook,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// letterIndexHook lets an answer given as "B" land in an int field as 1
func letterIndexHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	if n, ok := Index(data.(string)); ok {
		return n, nil
	}
	return data, nil
}

// arrayCandidates lists the arrays in v that may hold the requested list. A bare
// array is the only candidate. For an object such as {"flashcards": [...]} the
// preferred keys come first, then every other array value by key.
func arrayCandidates(v interface{}, preferred ...string) [][]interface{} {
	switch t := v.(type) {
	case []interface{}:
		return [][]interface{}{t}
	case map[string]interface{}:
		var out [][]interface{}
		seen := make(map[string]bool, len(preferred))
		for _, key := range preferred {
			if arr, ok := t[key].([]interface{}); ok {
				out = append(out, arr)
			}
			seen[key] = true
		}
		keys := make([]string, 0, len(t))
		for key := range t {
			if !seen[key] {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			if arr, ok := t[key].([]interface{}); ok {
				out = append(out, arr)
			}
		}
		return out
	}
	return nil
}

// hasAnyKey reports whether v is an object carrying at least one of keys
func hasAnyKey(v interface{}, keys ...string) bool {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	for _, key := range keys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// labeledValue scans lines for the first one carrying label as a whole word
// followed by a colon, and returns the cleaned text after that colon
func labeledValue(lines []string, label string) (string, bool) {
	label = asciiLower(label)
	for _, line := range lines {
		lower := asciiLower(line)
		for from := 0; from < len(lower); {
			idx := strings.Index(lower[from:], label)
			if idx < 0 {
				break
			}
			idx += from
			from = idx + len(label)
			colon, ok := labelColon(lower, idx, len(label))
			if !ok {
				continue
			}
			if v := cleanValue(line[colon+1:]); v != "" {
				return v, true
			}
			break
		}
	}
	return "", false
}

// labelColon checks that the label at lower[idx:idx+n] stands alone and is
// followed by a colon, allowing quotes, emphasis and a number in between
// ("title":, **Title:**, Question 2:). It returns the colon's offset.
func labelColon(lower string, idx, n int) (int, bool) {
	if idx > 0 && isWordByte(lower[idx-1]) {
		return 0, false
	}
	end := idx + n
	if end < len(lower) && (isLetter(lower[end]) || lower[end] == '_') {
		return 0, false
	}
	for i := end; i < len(lower); i++ {
		switch c := lower[i]; {
		case c == ':':
			return i, true
		case c == '"' || c == '\'' || c == '*' || c == ' ' || c == '\t' || (c >= '0' && c <= '9'):
		default:
			return 0, false
		}
	}
	return 0, false
}

// asciiLower folds only ASCII letters so byte offsets still index the original
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// cleanValue strips JSON and markdown punctuation around a scanned value. A value
// opening with a double quote ends at its closing quote, so the rest of a
// one-line JSON object never leaks in.
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "\"") {
		if end := closingQuote(s); end > 0 {
			if u, err := strconv.Unquote(s[:end+1]); err == nil {
				return strings.TrimSpace(u)
			}
		}
	}
	s = strings.TrimSuffix(s, ",")
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.Trim(s, "\"'*`"))
}

// closingQuote returns the index of the unescaped quote closing s[0], or -1
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func nonEmptyLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
