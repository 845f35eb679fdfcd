package actions

import (
	"fmt"
	"strings"

	"aitools/backend/internal/adapter"
	"aitools/backend/internal/constants"
	"aitools/backend/internal/prompt"
	apperrors "aitools/backend/pkg/errors"
)

type themeParams struct {
	Theme string `json:"theme" validate:"notblank"`
}

// imageParams drive both image actions. Seeds, when given, win over Count and Seed.
type imageParams struct {
	Prompt  string  `json:"prompt" validate:"notblank"`
	Count   int     `json:"count"`
	Seed    *int64  `json:"seed"`
	Seeds   []int64 `json:"seeds"`
	Size    string  `json:"size"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Model   string  `json:"model" validate:"omitempty,oneof=flux turbo"`
	Enhance bool    `json:"enhance"`
}

func (p *imageParams) clamp() {
	if len(p.Seeds) > constants.MaxImages {
		p.Seeds = p.Seeds[:constants.MaxImages]
	}
	p.Count = prompt.Clamp(p.Count, constants.MinImages, constants.MaxImages)
}

func (p *imageParams) check() error {
	if p.Size == "" {
		return nil
	}
	if _, ok := adapter.LookupSize(p.Size); !ok {
		return apperrors.NewInvalidInput("size", "unknown size preset "+p.Size)
	}
	return nil
}

// request resolves dimensions (explicit width/height, then size preset, then fallback) and seeds
func (p imageParams) request(text string, fallback string) imageRequest {
	opts := adapter.ImageOptions{Model: p.Model, Enhance: p.Enhance}
	size := p.Size
	if size == "" {
		size = fallback
	}
	if s, ok := adapter.LookupSize(size); ok {
		opts.Width, opts.Height = s.Width, s.Height
	}
	if p.Width > 0 {
		opts.Width = p.Width
	}
	if p.Height > 0 {
		opts.Height = p.Height
	}

	seeds := p.Seeds
	if len(seeds) == 0 {
		seeds = adapter.VariationSeeds(p.Seed, p.Count)
	}
	return imageRequest{prompt: text, seeds: seeds, opts: opts}
}

// LogoPrompt dresses a logo description up for the image model
func LogoPrompt(description string) string {
	return fmt.Sprintf("Professional logo design: %s. Minimalist, vector style, clean background, high quality", strings.TrimSpace(description))
}

func designConcept(name, tool, description, failure, format string) action {
	return textAction[descriptionParams, string]{
		name:        name,
		category:    "design",
		tool:        tool,
		description: description,
		mode:        ModeChat,
		failure:     failure,
		defaults:    func() descriptionParams { return descriptionParams{} },
		prompt: func(p descriptionParams) string {
			return fmt.Sprintf(format, p.Description)
		},
		normalize: asText,
	}
}

func designActions() []action {
	return []action{
		designConcept("logo-concept", "logo-maker", "Describe a logo concept with colors and typography", "Failed to generate logo concept",
			`Create a detailed logo concept based on this description: %s

Requirements:
- Describe the visual elements and composition
- Include color scheme recommendations
- Suggest typography styles if applicable
- Consider the brand message to convey
- Recommend suitable file formats
- Provide design rationale

Return the complete logo concept description.`),
		textAction[themeParams, string]{
			name:        "color-palette",
			category:    "design",
			tool:        "color-palette-generator",
			description: "Generate a named color palette with HEX codes",
			mode:        ModeChat,
			failure:     "Failed to generate color palette",
			defaults:    func() themeParams { return themeParams{} },
			prompt: func(p themeParams) string {
				return fmt.Sprintf(`Generate a harmonious color palette for: %s

Requirements:
- Include 5-7 colors that work well together
- Provide HEX codes for each color
- Describe the mood/emotion each color evokes
- Suggest which colors work best for backgrounds, text, accents
- Consider accessibility and contrast ratios
- Name the color palette

Return the color palette with names and HEX codes.`, p.Theme)
			},
			normalize: asText,
		},
		designConcept("favicon-concept", "favicon-generator", "Describe a favicon that reads at 16x16", "Failed to generate favicon concept",
			`Generate a favicon concept for: %s

Requirements:
- Describe the simple, iconic design that works at 16x16 pixels
- Focus on high contrast and recognizability
- Consider simplicity and brand representation
- Suggest color scheme suitable for favicon
- Recommend format (PNG, ICO)
- Provide implementation guidance

Return the favicon concept description.`),
		designConcept("font-pairing", "font-pairing-generator", "Recommend a heading and body font pairing", "Failed to generate font pairing",
			`Generate a harmonious font pairing for: %s

Requirements:
- Suggest one font for headings/titles
- Suggest one font for body text
- Explain why the pairing works well
- Consider readability and brand alignment
- Suggest web-safe alternatives
- Include considerations for accessibility

Return the font pairing recommendation with explanations.`),
		designConcept("mockup", "mockup-generator", "Describe a device mockup layout", "Failed to generate mockup concept",
			`Generate a mockup concept for: %s

Requirements:
- Describe the layout and composition
- Suggest appropriate device frames (phone, tablet, desktop)
- Include background and styling suggestions
- Consider user interface elements
- Recommend placement of key elements
- Suggest color scheme and typography

Return the complete mockup concept description.`),
		imageAction[imageParams]{
			name:        "logo-image",
			category:    "design",
			tool:        "logo-maker",
			description: "Render logo variations as image URLs",
			failure:     "Failed to generate logo images",
			defaults:    func() imageParams { return imageParams{Count: 4} },
			request: func(p imageParams) imageRequest {
				return p.request(LogoPrompt(p.Prompt), "logo")
			},
		},
		imageAction[imageParams]{
			name:        "image",
			category:    "design",
			tool:        "ai-image-generator",
			description: "Render image variations of a prompt as URLs",
			failure:     "Failed to generate images",
			defaults:    func() imageParams { return imageParams{Count: 1} },
			request: func(p imageParams) imageRequest {
				return p.request(p.Prompt, "")
			},
		},
	}
}
