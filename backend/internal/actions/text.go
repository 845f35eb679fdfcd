package actions

import (
	"fmt"

	"aitools/backend/internal/normalize"
)

type summarizeParams struct {
	Text   string `json:"text" validate:"notblank"`
	Length string `json:"length" validate:"oneof=short medium long"`
}

type textParams struct {
	Text string `json:"text" validate:"notblank"`
}

type adCopyParams struct {
	Copy     string `json:"copy" validate:"notblank"`
	Platform string `json:"platform" validate:"oneof=facebook google linkedin"`
}

var summaryLengths = map[string]string{
	"short":  "in 1-2 sentences",
	"medium": "in 3-5 sentences",
	"long":   "in 1-2 paragraphs",
}

var adPlatforms = map[string]string{
	"facebook": "Facebook ads with emotional appeal and social proof",
	"google":   "Google ads with clear value proposition and call-to-action",
	"linkedin": "LinkedIn ads with professional tone and business benefits",
}

func textActions() []action {
	return []action{
		textAction[summarizeParams, string]{
			name:        "summarize",
			category:    "text",
			tool:        "summarizer",
			description: "Summarize text at a chosen length",
			mode:        ModeChat,
			failure:     "Failed to summarize text",
			defaults:    func() summarizeParams { return summarizeParams{Length: "medium"} },
			prompt: func(p summarizeParams) string {
				return fmt.Sprintf(`Summarize the following text %s:

%s

Requirements:
- Capture the main points and key information
- Keep it %s and concise
- Maintain the original meaning
- Use clear, simple language
- Return only the summary without quotes or explanations`, summaryLengths[p.Length], p.Text, p.Length)
			},
			normalize: asText,
		},
		textAction[textParams, string]{
			name:        "expand",
			category:    "text",
			tool:        "text-expander",
			description: "Expand text into a fuller version",
			mode:        ModeChat,
			failure:     "Failed to expand text",
			defaults:    func() textParams { return textParams{} },
			prompt: func(p textParams) string {
				return fmt.Sprintf(`Expand the following text into a more detailed and comprehensive version:

%s

Requirements:
- Add relevant details and context
- Maintain the original meaning and tone
- Make it more informative and engaging
- Use natural, flowing language
- Expand to 2-3x the original length
- Return only the expanded text`, p.Text)
			},
			normalize: asText,
		},
		textAction[textParams, string]{
			name:        "simplify",
			category:    "text",
			tool:        "text-simplifier",
			description: "Rewrite text at a 5th-grade reading level",
			mode:        ModeChat,
			failure:     "Failed to simplify text",
			defaults:    func() textParams { return textParams{} },
			prompt: func(p textParams) string {
				return fmt.Sprintf(`Simplify the following text to make it easier to understand:

%s

Requirements:
- Use simple, everyday language
- Break down complex concepts
- Remove jargon and technical terms
- Keep the same meaning but make it accessible
- Target a 5th-grade reading level
- Return only the simplified text`, p.Text)
			},
			normalize: asText,
		},
		textAction[textParams, string]{
			name:        "grammar",
			category:    "text",
			tool:        "grammar-checker",
			description: "Fix grammar and polish writing",
			mode:        ModeChat,
			failure:     "Failed to correct grammar",
			defaults:    func() textParams { return textParams{} },
			prompt: func(p textParams) string {
				return fmt.Sprintf(`Correct the grammar and improve the writing quality of the following text:

%s

Requirements:
- Fix all grammatical errors
- Improve sentence structure and flow
- Maintain the original meaning and tone
- Make it more professional and polished
- Ensure proper punctuation and capitalization
- Return only the corrected text`, p.Text)
			},
			normalize: asText,
		},
		textAction[adCopyParams, string]{
			name:        "ad-copy",
			category:    "text",
			tool:        "ad-copy-optimizer",
			description: "Optimize ad copy for Facebook, Google or LinkedIn",
			mode:        ModeChat,
			failure:     "Failed to optimize ad copy",
			defaults:    func() adCopyParams { return adCopyParams{Platform: "facebook"} },
			prompt: func(p adCopyParams) string {
				return fmt.Sprintf(`Optimize the following ad copy for %s:

%s

Requirements:
- Increase click-through rate and engagement
- Include compelling headlines and descriptions
- Add strong call-to-action
- Optimize for %s audience
- Make it more persuasive and conversion-focused
- Keep it concise and impactful
- Return only the optimized ad copy`, adPlatforms[p.Platform], p.Copy, p.Platform)
			},
			normalize: asText,
		},
		textAction[contentParams, normalize.SEOMeta]{
			name:        "seo-meta",
			category:    "text",
			tool:        "seo-meta-generator",
			description: "Generate an SEO title and meta description",
			mode:        ModeChat,
			failure:     "Failed to generate SEO meta tags",
			defaults:    func() contentParams { return contentParams{} },
			prompt: func(p contentParams) string {
				return fmt.Sprintf(`Generate SEO-optimized title and meta description for the following content:

%s

Requirements:
- Title: Under 60 characters, include primary keyword, compelling
- Description: 150-160 characters, include keywords, enticing
- Focus on search engine optimization
- Make them click-worthy and relevant
- Format as JSON: {"title": "...", "description": "..."}`, p.Content)
			},
			normalize: structured(normalize.ParseSEOMeta),
		},
	}
}
