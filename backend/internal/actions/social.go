package actions

import (
	"fmt"

	"aitools/backend/internal/constants"
	"aitools/backend/internal/prompt"
)

type hashtagsParams struct {
	Description string `json:"description" validate:"notblank"`
	Platform    string `json:"platform" validate:"oneof=instagram twitter linkedin tiktok"`
}

type socialPostParams struct {
	Content  string `json:"content" validate:"notblank"`
	Platform string `json:"platform" validate:"oneof=instagram twitter linkedin facebook"`
}

type engagementParams struct {
	Post string `json:"post" validate:"notblank"`
}

type calendarParams struct {
	Brand string `json:"brand" validate:"notblank"`
	Theme string `json:"theme" validate:"notblank"`
	Days  int    `json:"days"`
}

func (p *calendarParams) clamp() {
	p.Days = prompt.Clamp(p.Days, constants.MinCalendar, constants.MaxCalendar)
}

type outreachParams struct {
	Brand      string `json:"brand" validate:"notblank"`
	Influencer string `json:"influencer" validate:"notblank"`
}

// hashtagLimit is enforced only through the prompt; the result is not truncated
func hashtagLimit(platform string) int {
	if n, ok := constants.HashtagLimits[platform]; ok {
		return n
	}
	return constants.DefaultHashtagLimit
}

func socialActions() []action {
	return []action{
		textAction[hashtagsParams, []string]{
			name:        "hashtags",
			category:    "social",
			tool:        "hashtag-generator",
			description: "Generate platform-appropriate hashtags",
			mode:        ModeChat,
			failure:     "Failed to generate hashtags",
			defaults:    func() hashtagsParams { return hashtagsParams{Platform: "instagram"} },
			prompt: func(p hashtagsParams) string {
				return fmt.Sprintf(`Generate %d relevant hashtags for: %s

Platform: %s

Requirements:
- Create hashtags that are popular and relevant to the content
- Include a mix of broad and specific tags
- Consider trending topics if applicable
- Make sure they're appropriate for the platform
- Separate each hashtag with a space
- Focus on hashtags that will increase discoverability

Return only the hashtags separated by spaces.`, hashtagLimit(p.Platform), p.Description, p.Platform)
			},
			normalize: asHashtags,
		},
		textAction[socialPostParams, string]{
			name:        "social-post",
			category:    "social",
			tool:        "social-post-generator",
			description: "Write a post tuned for a social platform",
			mode:        ModeChat,
			failure:     "Failed to generate social post",
			defaults:    func() socialPostParams { return socialPostParams{Platform: "instagram"} },
			prompt: func(p socialPostParams) string {
				return fmt.Sprintf(`Create a social media post for %s about: %s

Requirements:
- Match the tone to the platform (casual for Instagram/TikTok, professional for LinkedIn, concise for Twitter)
- Include relevant emojis where appropriate
- Add a call-to-action if relevant
- Consider optimal length for the platform
- Include relevant hashtags if appropriate

Return the complete social media post.`, p.Platform, p.Content)
			},
			normalize: asText,
		},
		textAction[engagementParams, string]{
			name:        "engagement-analysis",
			category:    "social",
			tool:        "engagement-analyzer",
			description: "Assess the likely engagement of a post and suggest improvements",
			mode:        ModeChat,
			failure:     "Failed to analyze engagement",
			defaults:    func() engagementParams { return engagementParams{} },
			prompt: func(p engagementParams) string {
				return fmt.Sprintf(`Analyze the potential engagement of this social media post: %s

Requirements:
- Assess the likely engagement level (high, medium, low)
- Identify elements that could boost engagement
- Suggest improvements for better engagement
- Consider emotional appeal
- Consider visual elements if applicable
- Note any potential issues

Return the engagement analysis.`, p.Post)
			},
			normalize: asText,
		},
		textAction[calendarParams, string]{
			name:        "content-calendar",
			category:    "social",
			tool:        "content-calendar-generator",
			description: "Plan daily post ideas for a brand and theme",
			mode:        ModeChat,
			failure:     "Failed to generate content calendar",
			defaults:    func() calendarParams { return calendarParams{Days: 7} },
			prompt: func(p calendarParams) string {
				return fmt.Sprintf(`Generate a %d-day content calendar for %s focused on %s

Requirements:
- Include a different post idea for each day
- Vary the content types (educational, promotional, user-generated, behind-the-scenes, etc.)
- Include relevant hashtags for each post
- Consider special days/holidays if applicable
- Ensure content aligns with the brand voice
- Suggest optimal posting times if platform-specific

Return the content calendar with daily post ideas.`, p.Days, p.Brand, p.Theme)
			},
			normalize: asText,
		},
		textAction[outreachParams, string]{
			name:        "influencer-outreach",
			category:    "social",
			tool:        "influencer-outreach-generator",
			description: "Draft a collaboration pitch to an influencer",
			mode:        ModeChat,
			failure:     "Failed to generate influencer outreach",
			defaults:    func() outreachParams { return outreachParams{} },
			prompt: func(p outreachParams) string {
				return fmt.Sprintf(`Generate an influencer outreach message for %s to %s

Requirements:
- Professional but personable tone
- Mention why their content resonates with the brand
- Describe the collaboration opportunity
- Keep it concise and clear
- Include value proposition for the influencer
- End with a clear call-to-action

Return the complete outreach message.`, p.Brand, p.Influencer)
			},
			normalize: asText,
		},
	}
}
