package actions

import (
	"fmt"

	"aitools/backend/internal/constants"
	"aitools/backend/internal/prompt"
)

type startupIdeasParams struct {
	Keyword string `json:"keyword" validate:"notblank"`
	Count   int    `json:"count"`
}

func (p *startupIdeasParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinIdeas, constants.MaxIdeas)
}

type videoScriptParams struct {
	Topic    string `json:"topic" validate:"notblank"`
	Duration string `json:"duration" validate:"oneof=short medium long"`
}

type appNamesParams struct {
	Description string `json:"description" validate:"notblank"`
	Count       int    `json:"count"`
}

func (p *appNamesParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinAppNames, constants.MaxAppNames)
}

type slogansParams struct {
	Brand    string `json:"brand" validate:"notblank"`
	Industry string `json:"industry" validate:"notblank"`
	Count    int    `json:"count"`
}

func (p *slogansParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinSlogans, constants.MaxSlogans)
}

type brainstormParams struct {
	Theme string `json:"theme" validate:"notblank"`
	Type  string `json:"type"`
}

var scriptLengths = map[string]string{
	"short":  "a 30-60 second YouTube Shorts/TikTok script",
	"medium": "a 3-5 minute YouTube video script",
	"long":   "a 10-15 minute detailed video script",
}

func creativityActions() []action {
	return []action{
		textAction[startupIdeasParams, []string]{
			name:        "startup-ideas",
			category:    "creativity",
			tool:        "startup-idea-generator",
			description: "Generate startup ideas around a keyword",
			mode:        ModeChat,
			failure:     "Failed to generate startup ideas",
			defaults:    func() startupIdeasParams { return startupIdeasParams{Count: 5} },
			prompt: func(p startupIdeasParams) string {
				return fmt.Sprintf(`Generate %d innovative startup ideas around "%s". Each idea should:
- Be unique and feasible
- Address a real market need
- Include a brief description (2-3 sentences)
- Consider current market trends
- Be separated by "%s"

Format: Company Name: Brief description and market opportunity

Return only the startup ideas separated by "%[3]s".`, p.Count, p.Keyword, constants.ListDelimiter)
			},
			normalize: asList,
		},
		textAction[videoScriptParams, string]{
			name:        "video-script",
			category:    "creativity",
			tool:        "video-script-generator",
			description: "Write a short, medium or long video script with timing and visual notes",
			mode:        ModeChat,
			failure:     "Failed to generate video script",
			defaults:    func() videoScriptParams { return videoScriptParams{Duration: "medium"} },
			prompt: func(p videoScriptParams) string {
				return fmt.Sprintf(`Create %s about "%s".

Structure:
- Hook (first 5 seconds)
- Introduction
- Main content points
- Call-to-action
- Outro

Requirements:
- Engaging and conversational tone
- Include timing cues
- Add notes for visuals/graphics
- Optimize for viewer retention
- Include strong hook and CTA

Return the complete script with timing and visual notes.`, scriptLengths[p.Duration], p.Topic)
			},
			normalize: asText,
		},
		textAction[appNamesParams, []string]{
			name:        "app-names",
			category:    "creativity",
			tool:        "app-name-generator",
			description: "Suggest short, brandable app names",
			mode:        ModeChat,
			failure:     "Failed to generate app names",
			defaults:    func() appNamesParams { return appNamesParams{Count: 10} },
			prompt: func(p appNamesParams) string {
				return fmt.Sprintf(`Generate %d creative app names for: %s

Requirements:
- Short and memorable (1-2 words)
- Easy to pronounce and spell
- Available as domain potential
- Brandable and unique
- Relevant to the app concept
- Modern and catchy
- Separate each name with "%s"

Return only the app names separated by "%[3]s".`, p.Count, p.Description, constants.ListDelimiter)
			},
			normalize: asList,
		},
		textAction[slogansParams, []string]{
			name:        "slogans",
			category:    "creativity",
			tool:        "slogan-generator",
			description: "Create memorable slogans for a brand in an industry",
			mode:        ModeChat,
			failure:     "Failed to generate slogans",
			defaults:    func() slogansParams { return slogansParams{Count: 5} },
			prompt: func(p slogansParams) string {
				return fmt.Sprintf(`Create %d memorable slogans for "%s" in the %s industry.

Requirements:
- Short and catchy (2-7 words)
- Memorable and easy to recall
- Reflects brand values
- Industry appropriate
- Emotionally engaging
- Unique and differentiating
- Separate each slogan with "%s"

Return only the slogans separated by "%[4]s".`, p.Count, p.Brand, p.Industry, constants.ListDelimiter)
			},
			normalize: asList,
		},
		textAction[brainstormParams, []string]{
			name:        "brainstorm",
			category:    "creativity",
			tool:        "brainstorm-assistant",
			description: "Brainstorm ten ideas for a theme",
			mode:        ModeChat,
			failure:     "Failed to brainstorm ideas",
			defaults:    func() brainstormParams { return brainstormParams{Type: "general"} },
			prompt: func(p brainstormParams) string {
				return fmt.Sprintf(`Brainstorm creative ideas for "%s" in the context of %s.

Generate 10 diverse and innovative ideas that:
- Think outside the box
- Are actionable and practical
- Cover different approaches/angles
- Spark further creativity
- Range from simple to complex
- Separate each idea with "%s"

Return only the ideas separated by "%[3]s".`, p.Theme, p.Type, constants.ListDelimiter)
			},
			normalize: asList,
		},
	}
}
