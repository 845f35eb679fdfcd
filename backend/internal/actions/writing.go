package actions

import (
	"fmt"

	"aitools/backend/internal/constants"
	"aitools/backend/internal/prompt"
)

type paraphraseParams struct {
	Text string `json:"text" validate:"notblank"`
	Tone string `json:"tone" validate:"oneof=formal casual funny"`
}

type tweetsParams struct {
	Topic string `json:"topic" validate:"notblank"`
	Count int    `json:"count"`
}

func (p *tweetsParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinTweets, constants.MaxTweets)
}

type contentParams struct {
	Content string `json:"content" validate:"notblank"`
}

type emailRewriteParams struct {
	Email string `json:"email" validate:"notblank"`
	Style string `json:"style" validate:"oneof=polite persuasive concise"`
}

type descriptionParams struct {
	Description string `json:"description" validate:"notblank"`
}

type coldDMParams struct {
	Context  string `json:"context" validate:"notblank"`
	Platform string `json:"platform" validate:"oneof=twitter linkedin"`
}

type productDescriptionParams struct {
	ProductName string `json:"product_name" validate:"notblank"`
	Features    string `json:"features" validate:"notblank"`
}

type headlinesParams struct {
	Content string `json:"content" validate:"notblank"`
	Count   int    `json:"count"`
}

func (p *headlinesParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinHeadlines, constants.MaxHeadlines)
}

var emailStyleGoals = map[string]string{
	"polite":     "more courteous and respectful",
	"persuasive": "more convincing and compelling",
	"concise":    "shorter and more direct",
}

func writingActions() []action {
	return []action{
		textAction[paraphraseParams, string]{
			name:        "paraphrase",
			category:    "writing",
			tool:        "ai-paraphraser",
			description: "Rewrite text in a formal, casual or funny tone",
			mode:        ModeChat,
			failure:     "Failed to paraphrase text",
			defaults:    func() paraphraseParams { return paraphraseParams{Tone: "casual"} },
			prompt: func(p paraphraseParams) string {
				return fmt.Sprintf(`Rewrite the following text in a %[1]s tone while maintaining the original meaning:

%[2]s

Requirements:
- Keep the same meaning and key information
- Adjust the tone to be %[1]s
- Make it natural and engaging
- Return only the rewritten text without quotes or explanations`, p.Tone, p.Text)
			},
			normalize: asText,
		},
		textAction[tweetsParams, []string]{
			name:        "tweets",
			category:    "writing",
			tool:        "tweet-generator",
			description: "Generate engaging tweets about a topic",
			mode:        ModeChat,
			failure:     "Failed to generate tweets",
			defaults:    func() tweetsParams { return tweetsParams{Count: 3} },
			prompt: func(p tweetsParams) string {
				return fmt.Sprintf(`Generate %d engaging tweets about "%s". Each tweet should:
- Be under 280 characters
- Include relevant hashtags
- Be engaging and shareable
- Have a clear call-to-action or hook
- Be separated by "%s"

Format: Just return the tweets separated by "%[3]s" without numbering or extra text.`, p.Count, p.Topic, constants.ListDelimiter)
			},
			normalize: asList,
		},
		textAction[contentParams, string]{
			name:        "linkedin-post",
			category:    "writing",
			tool:        "linkedin-post-formatter",
			description: "Format content into a professional LinkedIn post",
			mode:        ModeChat,
			failure:     "Failed to format LinkedIn post",
			defaults:    func() contentParams { return contentParams{} },
			prompt: func(p contentParams) string {
				return fmt.Sprintf(`Format the following content into a professional LinkedIn post:

%s

Requirements:
- Add appropriate emojis
- Structure with proper spacing and bullet points
- Include relevant professional hashtags
- Make it engaging for LinkedIn audience
- Keep it professional but approachable
- Add a clear call-to-action at the end

Return only the formatted post.`, p.Content)
			},
			normalize: asText,
		},
		textAction[emailRewriteParams, string]{
			name:        "email-rewrite",
			category:    "writing",
			tool:        "email-rewriter",
			description: "Rewrite an email to be polite, persuasive or concise",
			mode:        ModeChat,
			failure:     "Failed to rewrite email",
			defaults:    func() emailRewriteParams { return emailRewriteParams{Style: "polite"} },
			prompt: func(p emailRewriteParams) string {
				return fmt.Sprintf(`Rewrite the following email to be more %s:

%s

Requirements:
- Maintain the original intent and key information
- Make it %s
- Use professional language
- Keep the same structure (greeting, body, closing)
- Return only the rewritten email`, p.Style, p.Email, emailStyleGoals[p.Style])
			},
			normalize: asText,
		},
		textAction[descriptionParams, string]{
			name:        "instagram-caption",
			category:    "writing",
			tool:        "instagram-caption-generator",
			description: "Write an Instagram caption with emojis and hashtags",
			mode:        ModeChat,
			failure:     "Failed to generate Instagram caption",
			defaults:    func() descriptionParams { return descriptionParams{} },
			prompt: func(p descriptionParams) string {
				return fmt.Sprintf(`Create an engaging Instagram caption for: %s

Requirements:
- Start with a hook to grab attention
- Include relevant emojis throughout
- Add 5-10 relevant hashtags at the end
- Keep it engaging and authentic
- Include a call-to-action
- Make it Instagram-friendly with good spacing

Return only the caption with hashtags.`, p.Description)
			},
			normalize: asText,
		},
		textAction[coldDMParams, string]{
			name:        "cold-dm",
			category:    "writing",
			tool:        "cold-dm-generator",
			description: "Draft a short cold outreach message for Twitter or LinkedIn",
			mode:        ModeChat,
			failure:     "Failed to generate cold DM",
			defaults:    func() coldDMParams { return coldDMParams{Platform: "linkedin"} },
			prompt: func(p coldDMParams) string {
				tone := "Casual but respectful tone for Twitter"
				if p.Platform == "linkedin" {
					tone = "Professional tone suitable for LinkedIn"
				}
				return fmt.Sprintf(`Create a cold outreach message for %s based on this context: %s

Requirements:
- Be personalized and specific
- %s
- Include a clear value proposition
- Keep it brief (under 150 words)
- End with a soft call-to-action
- Avoid being salesy or pushy

Return only the message.`, p.Platform, p.Context, tone)
			},
			normalize: asText,
		},
		textAction[productDescriptionParams, string]{
			name:        "product-description",
			category:    "writing",
			tool:        "product-description-writer",
			description: "Write a persuasive product description from a name and features",
			mode:        ModeChat,
			failure:     "Failed to generate product description",
			defaults:    func() productDescriptionParams { return productDescriptionParams{} },
			prompt: func(p productDescriptionParams) string {
				return fmt.Sprintf(`Create a compelling product description for "%s" with these features: %s

Requirements:
- Start with a compelling headline
- Highlight key benefits, not just features
- Use persuasive language
- Include emotional appeal
- End with a clear call-to-action
- Make it SEO-friendly
- Keep it concise but compelling (150-200 words)

Return only the product description.`, p.ProductName, p.Features)
			},
			normalize: asText,
		},
		textAction[headlinesParams, []string]{
			name:        "headlines",
			category:    "writing",
			tool:        "headline-generator",
			description: "Generate catchy headlines for a piece of content",
			mode:        ModeChat,
			failure:     "Failed to generate headlines",
			defaults:    func() headlinesParams { return headlinesParams{Count: 5} },
			prompt: func(p headlinesParams) string {
				return fmt.Sprintf(`Generate %d catchy headlines for this content: %s

Requirements:
- Make them click-worthy and engaging
- Include power words and emotional triggers
- Keep them under 60 characters for SEO
- Make them specific and benefit-focused
- Vary the style (question, list, how-to, etc.)
- Separate each headline with "%s"

Return only the headlines separated by "%[3]s".`, p.Count, p.Content, constants.ListDelimiter)
			},
			normalize: asList,
		},
	}
}
