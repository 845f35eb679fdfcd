package actions

import (
	"fmt"

	"aitools/backend/internal/normalize"
)

type explainCodeParams struct {
	Code     string `json:"code" validate:"notblank"`
	Language string `json:"language"`
}

type commitParams struct {
	Diff string `json:"diff" validate:"notblank"`
}

type sqlParams struct {
	Description string `json:"description" validate:"notblank"`
	Database    string `json:"database"`
}

type debugParams struct {
	Code     string `json:"code" validate:"notblank"`
	Error    string `json:"error" validate:"notblank"`
	Language string `json:"language" validate:"notblank"`
}

func developerActions() []action {
	return []action{
		textAction[explainCodeParams, string]{
			name:        "explain-code",
			category:    "developer",
			tool:        "code-explainer",
			description: "Explain code for a beginner",
			mode:        ModeChat,
			failure:     "Failed to explain code",
			defaults:    func() explainCodeParams { return explainCodeParams{Language: "auto"} },
			prompt: func(p explainCodeParams) string {
				lang := p.Language
				if lang == "auto" {
					lang = ""
				}
				return fmt.Sprintf("Explain this %[1]s code in simple terms:\n\n```%[1]s\n%[2]s\n```"+`

Provide:
- Overall purpose of the code
- Line-by-line explanation for complex parts
- Key concepts and terminology
- What the code accomplishes
- Any potential improvements or issues

Explain it so a beginner can understand.`, lang, p.Code)
			},
			normalize: asText,
		},
		textAction[descriptionParams, normalize.Regex]{
			name:        "regex",
			category:    "developer",
			tool:        "regex-generator",
			description: "Build a regular expression with explanation and examples",
			mode:        ModeChat,
			failure:     "Failed to generate regex",
			defaults:    func() descriptionParams { return descriptionParams{} },
			prompt: func(p descriptionParams) string {
				return fmt.Sprintf(`Create a regular expression for: "%s"

Provide the response in this JSON format:
{
  "pattern": "the regex pattern",
  "explanation": "detailed explanation of the pattern",
  "examples": ["example1", "example2", "example3"]
}

Make sure the regex is:
- Accurate and tested
- Well-explained
- Includes practical examples`, p.Description)
			},
			normalize: structured(normalize.ParseRegex),
		},
		textAction[commitParams, string]{
			name:        "commit-message",
			category:    "developer",
			tool:        "commit-message-generator",
			description: "Write a conventional commit message for a diff",
			mode:        ModeChat,
			failure:     "Failed to generate commit message",
			defaults:    func() commitParams { return commitParams{} },
			prompt: func(p commitParams) string {
				return fmt.Sprintf(`Generate a clean git commit message for these changes:

%s

Follow conventional commit format:
- Start with type: feat, fix, docs, style, refactor, test, chore
- Keep the summary under 50 characters
- Use imperative mood
- Be specific but concise

Examples:
- feat: add user authentication system
- fix: resolve memory leak in data processor
- docs: update API documentation

Return only the commit message.`, p.Diff)
			},
			normalize: asTrimmed,
		},
		textAction[sqlParams, string]{
			name:        "sql-query",
			category:    "developer",
			tool:        "sql-query-generator",
			description: "Write a commented SQL query for a dialect",
			mode:        ModeChat,
			failure:     "Failed to generate SQL query",
			defaults:    func() sqlParams { return sqlParams{Database: "mysql"} },
			prompt: func(p sqlParams) string {
				return fmt.Sprintf(`Generate a %[1]s SQL query for: "%[2]s"

Requirements:
- Use proper %[1]s syntax
- Include comments explaining complex parts
- Follow best practices
- Make it readable and efficient
- Handle common edge cases

Return only the SQL query with comments.`, p.Database, p.Description)
			},
			normalize: asText,
		},
		textAction[debugParams, string]{
			name:        "debug-code",
			category:    "developer",
			tool:        "code-debugger",
			description: "Find the cause of an error and propose a fix",
			mode:        ModeChat,
			failure:     "Failed to debug code",
			defaults:    func() debugParams { return debugParams{} },
			prompt: func(p debugParams) string {
				return fmt.Sprintf("Debug this %[1]s code that's producing the error: \"%[2]s\"\n\nCode:\n```%[1]s\n%[3]s\n```"+`

Provide:
- Explanation of what's causing the error
- Step-by-step solution
- Corrected code
- Best practices to prevent similar issues
- Alternative approaches if applicable`, p.Language, p.Error, p.Code)
			},
			normalize: asText,
		},
	}
}
