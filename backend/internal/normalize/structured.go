package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Confidence says how a structured result was obtained
type Confidence string

const (
	// ConfidenceParsed means the output matched the requested JSON shape
	ConfidenceParsed Confidence = "parsed"
	// ConfidenceHeuristic means fields were scraped from labeled lines
	ConfidenceHeuristic Confidence = "heuristic"
	// ConfidencePlaceholder means nothing usable was found and defaults were returned
	ConfidencePlaceholder Confidence = "placeholder"
)

// SEOMeta is a search title and meta description
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Flashcard is one question/answer card
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is one multiple choice question. Correct indexes Options.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Regex is a generated pattern with notes
type Regex struct {
	Pattern     string   `json:"pattern"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// Vibe is a light-hearted reading of a text
type Vibe struct {
	Vibe        string `json:"vibe"`
	Mood        string `json:"mood"`
	Personality string `json:"personality"`
	Energy      string `json:"energy"`
}

// PlaceholderVibe is returned when a vibe analysis cannot be read at all
var PlaceholderVibe = Vibe{
	Vibe:        "Friendly and approachable",
	Mood:        "Positive and upbeat",
	Personality: "Engaging and expressive",
	Energy:      "Medium",
}

// PlaceholderQuiz is returned when no question can be read from the output
func PlaceholderQuiz() []QuizQuestion {
	return []QuizQuestion{
		{
			Question:    "What is the main topic of the provided content?",
			Options:     []string{"Option A", "Option B", "Option C", "Option D"},
			Correct:     0,
			Explanation: "This is the primary focus of the material.",
		},
	}
}

// ParseSEOMeta reads {title, description}. Both fields are always present,
// possibly empty when nothing could be found. A JSON object carrying either key
// is taken as given, empty fields included.
func ParseSEOMeta(raw string) (SEOMeta, Confidence) {
	if v, ok := extractJSON(raw); ok && hasAnyKey(v, "title", "description") {
		var meta SEOMeta
		if err := decodeInto(v, &meta); err == nil {
			meta.Title = strings.TrimSpace(meta.Title)
			meta.Description = strings.TrimSpace(meta.Description)
			return meta, ConfidenceParsed
		}
	}

	lines := nonEmptyLines(raw)
	title, okTitle := labeledValue(lines, "title")
	desc, okDesc := labeledValue(lines, "description")
	if okTitle || okDesc {
		return SEOMeta{Title: title, Description: desc}, ConfidenceHeuristic
	}

	return SEOMeta{}, ConfidencePlaceholder
}

// ParseFlashcards reads an array of {question, answer}. Cards missing either side are dropped.
func ParseFlashcards(raw string) ([]Flashcard, Confidence) {
	if v, ok := extractJSON(raw); ok {
		for _, arr := range arrayCandidates(v, "flashcards", "cards") {
			var cards []Flashcard
			if err := decodeInto(arr, &cards); err != nil {
				continue
			}
			if valid := completeCards(cards); len(valid) > 0 {
				return valid, ConfidenceParsed
			}
		}
	}

	if cards := scanFlashcards(nonEmptyLines(raw)); len(cards) > 0 {
		return cards, ConfidenceHeuristic
	}

	return []Flashcard{}, ConfidencePlaceholder
}

func completeCards(cards []Flashcard) []Flashcard {
	out := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		c.Question = strings.TrimSpace(c.Question)
		c.Answer = strings.TrimSpace(c.Answer)
		if c.Question != "" && c.Answer != "" {
			out = append(out, c)
		}
	}
	return out
}

// scanFlashcards pairs each question line with the answer line that follows it.
// Accepts both "question": "..." and Q:/A: styles.
func scanFlashcards(lines []string) []Flashcard {
	var cards []Flashcard
	var pending string
	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "question") || strings.HasPrefix(lower, "q:"):
			if v, ok := labeledValue([]string{line}, labelOf(lower, "question", "q")); ok {
				pending = v
			}
		case strings.Contains(lower, "answer") || strings.HasPrefix(lower, "a:"):
			if pending == "" {
				continue
			}
			if v, ok := labeledValue([]string{line}, labelOf(lower, "answer", "a")); ok {
				cards = append(cards, Flashcard{Question: pending, Answer: v})
				pending = ""
			}
		}
	}
	return cards
}

func labelOf(lower, long, short string) string {
	if strings.Contains(lower, long) {
		return long
	}
	return short
}

// ParseQuiz reads an array of questions. A question needs text, at least two
// options and an in-range correct index.
func ParseQuiz(raw string) ([]QuizQuestion, Confidence) {
	if v, ok := extractJSON(raw); ok {
		for _, arr := range arrayCandidates(v, "quiz", "questions") {
			var qs []QuizQuestion
			if err := decodeInto(arr, &qs); err != nil {
				continue
			}
			if valid := validQuestions(qs); len(valid) > 0 {
				return valid, ConfidenceParsed
			}
		}
	}

	if qs := validQuestions(scanQuiz(nonEmptyLines(raw))); len(qs) > 0 {
		return qs, ConfidenceHeuristic
	}

	return PlaceholderQuiz(), ConfidencePlaceholder
}

func validQuestions(qs []QuizQuestion) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(qs))
	for _, q := range qs {
		q.Question = strings.TrimSpace(q.Question)
		if q.Question == "" || len(q.Options) < 2 || q.Correct < 0 || q.Correct >= len(q.Options) {
			continue
		}
		out = append(out, q)
	}
	return out
}

var (
	questionLine = regexp.MustCompile(`^(?:\*\*)?(?:Q(?:uestion)?\s*)?\d+[.):]\s*(.+?)(?:\*\*)?$`)
	optionLine   = regexp.MustCompile(`^[-*]?\s*\(?([A-Da-d])[.)]\s+(.+)$`)
	answerLine   = regexp.MustCompile(`(?i)^(?:correct\s+)?answer\s*[:\-]\s*\(?([A-Da-d])\b`)
)

// scanQuiz reads the common plain-text layout: numbered question, lettered
// options, then an "Answer: X" line
func scanQuiz(lines []string) []QuizQuestion {
	var qs []QuizQuestion
	var cur *QuizQuestion
	flush := func() {
		if cur != nil {
			qs = append(qs, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		if m := answerLine.FindStringSubmatch(line); m != nil && cur != nil {
			cur.Correct = int(strings.ToUpper(m[1])[0] - 'A')
			continue
		}
		if m := optionLine.FindStringSubmatch(line); m != nil && cur != nil {
			cur.Options = append(cur.Options, strings.TrimSpace(m[2]))
			continue
		}
		if m := questionLine.FindStringSubmatch(line); m != nil {
			flush()
			cur = &QuizQuestion{Question: strings.TrimSpace(m[1]), Options: []string{}}
			continue
		}
		if cur != nil && strings.HasPrefix(strings.ToLower(line), "explanation") {
			if v, ok := labeledValue([]string{line}, "explanation"); ok {
				cur.Explanation = v
			}
		}
	}
	flush()
	return qs
}

// ParseRegex reads {pattern, explanation, examples}. A pattern is required for a parsed result.
func ParseRegex(raw string) (Regex, Confidence) {
	if v, ok := extractJSON(raw); ok {
		var r Regex
		if err := decodeInto(v, &r); err == nil && strings.TrimSpace(r.Pattern) != "" {
			if r.Examples == nil {
				r.Examples = []string{}
			}
			return r, ConfidenceParsed
		}
	}

	lines := nonEmptyLines(raw)
	pattern, okPattern := labeledValue(lines, "pattern")
	explanation, _ := labeledValue(lines, "explanation")
	if okPattern {
		return Regex{Pattern: pattern, Explanation: explanation, Examples: []string{}}, ConfidenceHeuristic
	}

	return Regex{Examples: []string{}}, ConfidencePlaceholder
}

// ParseVibe reads {vibe, mood, personality, energy}
func ParseVibe(raw string) (Vibe, Confidence) {
	if v, ok := extractJSON(raw); ok {
		var vibe Vibe
		if err := decodeInto(v, &vibe); err == nil && hasAnyKey(v, "vibe", "mood", "personality", "energy") {
			return vibe, ConfidenceParsed
		}
	}

	lines := nonEmptyLines(raw)
	var found bool
	vibe := PlaceholderVibe
	for label, field := range map[string]*string{
		"vibe":        &vibe.Vibe,
		"mood":        &vibe.Mood,
		"personality": &vibe.Personality,
		"energy":      &vibe.Energy,
	} {
		if v, ok := labeledValue(lines, label); ok {
			*field = v
			found = true
		}
	}
	if found {
		return vibe, ConfidenceHeuristic
	}

	return PlaceholderVibe, ConfidencePlaceholder
}

// Index parses a 0-based option index, also accepting a letter
func Index(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		if c >= 'A' && c <= 'Z' {
			return int(c - 'A'), true
		}
	}
	return 0, false
}
