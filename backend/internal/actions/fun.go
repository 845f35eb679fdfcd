package actions

import (
	"fmt"

	"aitools/backend/internal/normalize"
)

type bioParams struct {
	Bio string `json:"bio" validate:"notblank"`
}

type complimentParams struct {
	Name    string `json:"name" validate:"notblank"`
	Context string `json:"context"`
}

type poemParams struct {
	Prompt string `json:"prompt" validate:"notblank"`
	Style  string `json:"style"`
}

type insultParams struct {
	Style string `json:"style"`
}

var poemGuidelines = map[string]string{
	"haiku":    "- 5-7-5 syllable pattern\n- Nature or seasonal theme\n- Present tense",
	"sonnet":   "- 14 lines\n- ABAB CDCD EFEF GG rhyme scheme\n- Iambic pentameter",
	"limerick": "- 5 lines\n- AABBA rhyme scheme\n- Humorous tone",
}

const freeVerseGuidelines = "- No specific rhyme scheme\n- Natural rhythm\n- Expressive language"

var insultVoices = map[string]string{
	"shakespeare": "Elizabethan language and structure",
	"modern":      "Contemporary slang and references",
}

func funActions() []action {
	return []action{
		textAction[bioParams, string]{
			name:        "roast-bio",
			category:    "fun",
			tool:        "roast-my-bio",
			description: "Roast a bio, gently",
			mode:        ModeChat,
			failure:     "Failed to roast bio",
			defaults:    func() bioParams { return bioParams{} },
			prompt: func(p bioParams) string {
				return fmt.Sprintf(`Write a humorous, friendly roast of this bio: "%s"

Requirements:
- Keep it light-hearted and fun
- Point out clichés or overused phrases
- Be witty but not mean-spirited
- Include constructive humor
- Make it entertaining
- End with a positive note
- Keep it family-friendly`, p.Bio)
			},
			normalize: asText,
		},
		textAction[complimentParams, string]{
			name:        "compliment",
			category:    "fun",
			tool:        "compliment-generator",
			description: "Write a sincere, personal compliment",
			mode:        ModeChat,
			failure:     "Failed to generate compliment",
			defaults:    func() complimentParams { return complimentParams{} },
			prompt: func(p complimentParams) string {
				context := ""
				if p.Context != "" {
					context = " in the context of: " + p.Context
				}
				return fmt.Sprintf(`Generate a genuine, personalized compliment for %s%s.

Make it:
- Sincere and heartfelt
- Specific rather than generic
- Uplifting and positive
- Appropriate for the context
- Memorable and meaningful

Focus on character, achievements, or positive qualities.`, p.Name, context)
			},
			normalize: asText,
		},
		textAction[textParams, normalize.Vibe]{
			name:        "vibe-check",
			category:    "fun",
			tool:        "vibe-checker",
			description: "Read the vibe, mood and energy of a text",
			mode:        ModeChat,
			failure:     "Failed to analyze vibe",
			defaults:    func() textParams { return textParams{} },
			prompt: func(p textParams) string {
				return fmt.Sprintf(`Analyze the vibe and personality of this text: "%s"

Provide analysis in JSON format:
{
  "vibe": "overall vibe description",
  "mood": "current mood/emotional state",
  "personality": "personality traits shown",
  "energy": "energy level (high/medium/low)"
}

Be specific, insightful, and fun in your analysis.`, p.Text)
			},
			normalize: structured(normalize.ParseVibe),
		},
		textAction[poemParams, string]{
			name:        "poem",
			category:    "fun",
			tool:        "poem-generator",
			description: "Write a haiku, sonnet, limerick or free verse poem",
			mode:        ModeChat,
			failure:     "Failed to generate poem",
			defaults:    func() poemParams { return poemParams{Style: "free verse"} },
			prompt: func(p poemParams) string {
				guidelines, ok := poemGuidelines[p.Style]
				if !ok {
					guidelines = freeVerseGuidelines
				}
				return fmt.Sprintf(`Write a %[1]s poem about: "%[2]s"

Style guidelines for %[1]s:
%[3]s

Make it:
- Emotionally resonant
- Vivid and descriptive
- Creative and original
- Appropriate length for style`, p.Style, p.Prompt, guidelines)
			},
			normalize: asText,
		},
		textAction[insultParams, string]{
			name:        "insult",
			category:    "fun",
			tool:        "insult-generator",
			description: "Generate a harmless, witty insult",
			mode:        ModeChat,
			failure:     "Failed to generate insult",
			defaults:    func() insultParams { return insultParams{Style: "shakespeare"} },
			prompt: func(p insultParams) string {
				voice, ok := insultVoices[p.Style]
				if !ok {
					voice = "Playful and imaginative language"
				}
				return fmt.Sprintf(`Generate a creative, humorous insult in %s style.

Requirements:
- Clever and witty
- Family-friendly
- Creative wordplay
- Not actually hurtful
- Entertainment value
- %s

Make it memorable and fun!`, p.Style, voice)
			},
			normalize: asText,
		},
	}
}
