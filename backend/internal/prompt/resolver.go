package prompt

import (
	"fmt"
	"sort"
)

// Templates take the tool title, tool description and user input, in that order.
var categoryTemplates = map[string]string{
	"writing": `You are an expert %[1]s. %[2]s

User input: %[3]s

Generate high-quality output that is engaging, well-structured, and professional. Focus on clarity and impact.`,

	"creativity": `You are a creative %[1]s. %[2]s

User input: %[3]s

Generate innovative, unique, and inspiring ideas. Be creative and think outside the box while remaining practical.`,

	"text": `You are a %[1]s tool. %[2]s

User input: %[3]s

Process the text according to the tool's purpose. Maintain accuracy and clarity.`,

	"chat": `You are a helpful %[1]s. %[2]s

User message: %[3]s

Respond naturally, helpfully, and engagingly. Provide value in your response.`,

	"developer": `You are an expert %[1]s. %[2]s

User request: %[3]s

Provide accurate, well-formatted code or technical output. Include explanations where helpful.`,

	"learning": `You are an educational %[1]s. %[2]s

Topic/Content: %[3]s

Create educational content that is clear, structured, and easy to understand. Make learning engaging.`,

	"fun": `You are a fun %[1]s. %[2]s

User input: %[3]s

Create entertaining, engaging output while maintaining quality. Be creative and fun!`,

	"business": `You are a professional %[1]s. %[2]s

Business need: %[3]s

Generate professional, actionable business content. Focus on value and practicality.`,

	"design": `You are a %[1]s expert. %[2]s

Design request: %[3]s

Provide detailed design guidance, concepts, or descriptions. Be specific and professional.`,

	"seo": `You are an SEO %[1]s. %[2]s

Input: %[3]s

Generate SEO-optimized output following best practices. Focus on keywords, readability, and search performance.`,

	"social": `You are a social media %[1]s. %[2]s

Content: %[3]s

Create engaging social media content optimized for maximum engagement and reach.`,
}

const genericTemplate = `You are a %[1]s. %[2]s

User input: %[3]s

Generate appropriate output based on the tool's purpose.`

// Resolve builds the universal prompt for a tool. Templates are chosen per category,
// so toolID does not change the result. Categories without a template get the
// generic one. Input is embedded verbatim and is not validated here.
func Resolve(toolID, toolTitle, toolDescription, category, userInput string) string {
	tmpl, ok := categoryTemplates[category]
	if !ok {
		tmpl = genericTemplate
	}
	return fmt.Sprintf(tmpl, toolTitle, toolDescription, userInput)
}

// HasTemplate reports whether category has a dedicated template
func HasTemplate(category string) bool {
	_, ok := categoryTemplates[category]
	return ok
}

// TemplatedCategories lists the categories with a dedicated template, sorted
func TemplatedCategories() []string {
	out := make([]string, 0, len(categoryTemplates))
	for k := range categoryTemplates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clamp pins n into [lo, hi]
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
