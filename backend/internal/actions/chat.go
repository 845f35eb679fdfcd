package actions

import (
	"fmt"
	"sort"
	"strings"

	"aitools/backend/internal/constants"
	"aitools/backend/internal/state"
)

type chatParams struct {
	Message string          `json:"message" validate:"notblank"`
	History []state.Message `json:"history"`
}

type personaChatParams struct {
	Message string          `json:"message" validate:"notblank"`
	Persona string          `json:"persona" validate:"notblank"`
	History []state.Message `json:"history"`
}

type interviewParams struct {
	Field  string `json:"field" validate:"notblank"`
	Level  string `json:"level" validate:"notblank"`
	Answer string `json:"answer"`
}

type supportParams struct {
	Message string `json:"message" validate:"notblank"`
}

var personas = map[string]string{
	"elon-musk":     "You are Elon Musk. Respond with his characteristic enthusiasm for technology, space, and innovation. Be ambitious and visionary.",
	"steve-jobs":    "You are Steve Jobs. Respond with his focus on design, simplicity, and excellence. Be passionate about creating great products.",
	"shakespeare":   "You are William Shakespeare. Respond in Early Modern English with poetic flair and dramatic eloquence.",
	"einstein":      "You are Albert Einstein. Respond with curiosity about the universe, relativity, and scientific thinking.",
	"oprah":         "You are Oprah Winfrey. Respond with warmth, empathy, and inspirational energy.",
	"gordon-ramsay": "You are Gordon Ramsay. Respond with passion for cooking and high standards (but keep it family-friendly).",
}

// Personas lists the persona keys with a dedicated character prompt
func Personas() []string {
	keys := make([]string, 0, len(personas))
	for k := range personas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func personaPrompt(persona string) string {
	if p, ok := personas[strings.ToLower(persona)]; ok {
		return p
	}
	return fmt.Sprintf("You are roleplaying as %s. Respond in character with their typical mannerisms and perspective.", persona)
}

// historyBlock renders the trailing context window, or nothing for a new conversation.
// Messages that fail validation are skipped.
func historyBlock(history []state.Message) string {
	usable := make([]state.Message, 0, len(history))
	for _, m := range history {
		if m.Validate() == nil {
			usable = append(usable, m)
		}
	}
	transcript := state.Transcript(state.Window(usable, constants.ChatContextMessages))
	if transcript == "" {
		return ""
	}
	return "Previous conversation:\n" + transcript + "\n"
}

func chatActions() []action {
	return []action{
		textAction[chatParams, string]{
			name:        "chat",
			category:    "chat",
			tool:        "chatgpt-chatbot",
			description: "Reply to a message with recent conversation context",
			mode:        ModeChat,
			failure:     "Failed to get AI response",
			defaults:    func() chatParams { return chatParams{} },
			prompt: func(p chatParams) string {
				return fmt.Sprintf(`You are a helpful, friendly, and knowledgeable AI assistant. 

%s

User message: %s

Respond naturally and helpfully. Be conversational, informative, and engaging.`, historyBlock(p.History), p.Message)
			},
			normalize: asText,
		},
		textAction[personaChatParams, string]{
			name:        "persona-chat",
			category:    "chat",
			tool:        "ai-persona-chat",
			description: "Chat with a famous persona in character",
			mode:        ModeChat,
			failure:     "Failed to get persona response",
			defaults:    func() personaChatParams { return personaChatParams{} },
			prompt: func(p personaChatParams) string {
				return fmt.Sprintf(`%s

%s

User message: %s

Respond in character:`, personaPrompt(p.Persona), historyBlock(p.History), p.Message)
			},
			normalize: asText,
		},
		textAction[interviewParams, string]{
			name:        "interview",
			category:    "chat",
			tool:        "interview-simulator",
			description: "Run a mock job interview one question at a time",
			mode:        ModeChat,
			failure:     "Failed to simulate interview",
			defaults:    func() interviewParams { return interviewParams{} },
			prompt: func(p interviewParams) string {
				opening := "Start the interview."
				next := "Begin with a standard opening question."
				if strings.TrimSpace(p.Answer) != "" {
					opening = fmt.Sprintf(`The candidate just answered: "%s"`, p.Answer)
					next = "Provide brief feedback on their answer, then ask the next question."
				}
				return fmt.Sprintf(`You are conducting a %[1]s level job interview for a %[2]s position.

%[3]s

Ask a relevant, realistic interview question that:
- Matches the experience level (%[1]s)
- Is appropriate for %[2]s
- Tests practical knowledge and skills
- Is commonly asked in real interviews

%[4]s`, p.Level, p.Field, opening, next)
			},
			normalize: asText,
		},
		textAction[supportParams, string]{
			name:        "support",
			category:    "chat",
			tool:        "ai-support-companion",
			description: "Respond with empathy and gentle support",
			mode:        ModeChat,
			failure:     "Failed to provide support",
			defaults:    func() supportParams { return supportParams{} },
			prompt: func(p supportParams) string {
				return fmt.Sprintf(`You are a supportive, empathetic AI companion. The user is sharing: "%s"

Respond with:
- Empathy and understanding
- Gentle support and validation
- Helpful perspectives if appropriate
- Encouragement and hope
- Professional resources if needed

Important: You are not a replacement for professional therapy. Be supportive but acknowledge limitations.`, p.Message)
			},
			normalize: asText,
		},
	}
}
