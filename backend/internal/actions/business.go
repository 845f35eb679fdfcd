package actions

import (
	"fmt"

	"aitools/backend/internal/constants"
)

type ideaParams struct {
	Idea string `json:"idea" validate:"notblank"`
}

type emailTemplateParams struct {
	Context string `json:"context" validate:"notblank"`
	Purpose string `json:"purpose"`
}

type salesPitchParams struct {
	Product string `json:"product" validate:"notblank"`
	Target  string `json:"target" validate:"notblank"`
}

func businessActions() []action {
	return []action{
		textAction[ideaParams, string]{
			name:        "business-plan",
			category:    "business",
			tool:        "business-plan-generator",
			description: "Draft a sectioned business plan for an idea",
			mode:        ModeChat,
			failure:     "Failed to generate business plan",
			defaults:    func() ideaParams { return ideaParams{} },
			prompt: func(p ideaParams) string {
				return fmt.Sprintf(`Create a comprehensive business plan for: %s

Structure the plan with these sections:
- Executive Summary
- Company Description
- Market Analysis
- Organization & Management
- Service or Product Line
- Marketing & Sales Strategy
- Funding Request
- Financial Projections
- Appendix

Requirements:
- Include realistic financial projections
- Consider market trends and competition
- Provide actionable strategies
- Make it professional and detailed
- Format with clear headings and subheadings

Return the complete business plan.`, p.Idea)
			},
			normalize: asText,
		},
		textAction[emailTemplateParams, string]{
			name:        "email-template",
			category:    "business",
			tool:        "email-template-generator",
			description: "Write a reusable professional email template",
			mode:        ModeChat,
			failure:     "Failed to generate email template",
			defaults:    func() emailTemplateParams { return emailTemplateParams{Purpose: "professional"} },
			prompt: func(p emailTemplateParams) string {
				return fmt.Sprintf(`Create a professional email template for: %s

Purpose: %s

Requirements:
- Include appropriate greeting and closing
- Use professional tone
- Be concise and clear
- Include call-to-action if relevant
- Format with proper spacing

Return only the email template.`, p.Context, p.Purpose)
			},
			normalize: asText,
		},
		textAction[ideaParams, string]{
			name:        "pitch-deck",
			category:    "business",
			tool:        "pitch-deck-generator",
			description: "Outline investor pitch deck slides",
			mode:        ModeChat,
			failure:     "Failed to generate pitch deck",
			defaults:    func() ideaParams { return ideaParams{} },
			prompt: func(p ideaParams) string {
				return fmt.Sprintf(`Create a pitch deck outline for: %s

Include slides for:
- Problem
- Solution
- Market Size
- Business Model
- Competition
- Marketing Strategy
- Financial Projections
- Team
- Ask

Requirements:
- Each slide should have key points
- Include compelling visuals suggestions
- Focus on investor appeal
- Keep it concise but comprehensive

Return the pitch deck outline.`, p.Idea)
			},
			normalize: asText,
		},
		textAction[salesPitchParams, string]{
			name:        "sales-pitch",
			category:    "business",
			tool:        "sales-pitch-generator",
			description: "Write a sales pitch for a product and audience",
			mode:        ModeChat,
			failure:     "Failed to generate sales pitch",
			defaults:    func() salesPitchParams { return salesPitchParams{} },
			prompt: func(p salesPitchParams) string {
				return fmt.Sprintf(`Create a compelling sales pitch for %s targeting %s

Requirements:
- Hook to grab attention immediately
- Problem identification
- Solution presentation
- Social proof or testimonials
- Call-to-action
- Objection handling points
- Keep it conversational but persuasive

Return the complete sales pitch.`, p.Product, p.Target)
			},
			normalize: asText,
		},
		textAction[descriptionParams, []string]{
			name:        "brand-names",
			category:    "business",
			tool:        "brand-name-generator",
			description: "Suggest ten brandable names",
			mode:        ModeChat,
			failure:     "Failed to generate brand names",
			defaults:    func() descriptionParams { return descriptionParams{} },
			prompt: func(p descriptionParams) string {
				return fmt.Sprintf(`Generate 10 memorable brand names for: %s

Requirements:
- Short and memorable (1-2 words)
- Easy to pronounce and spell
- Available as domain potential
- Brandable and unique
- Relevant to the description
- Modern and catchy
- Separate each name with "%s"

Return only the brand names separated by "%[2]s".`, p.Description, constants.ListDelimiter)
			},
			normalize: asList,
		},
	}
}
