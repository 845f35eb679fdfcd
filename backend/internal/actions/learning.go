package actions

import (
	"fmt"

	"aitools/backend/internal/constants"
	"aitools/backend/internal/normalize"
	"aitools/backend/internal/prompt"
)

type notesParams struct {
	Notes string `json:"notes" validate:"notblank"`
}

type explainSimplyParams struct {
	Concept string `json:"concept" validate:"notblank"`
	Age     int    `json:"age"`
}

func (p *explainSimplyParams) clamp() {
	p.Age = prompt.Clamp(p.Age, constants.MinAge, constants.MaxAge)
}

type quizParams struct {
	Content string `json:"content" validate:"notblank"`
	Count   int    `json:"count"`
}

func (p *quizParams) clamp() {
	p.Count = prompt.Clamp(p.Count, constants.MinQuiz, constants.MaxQuiz)
}

type studyPlanParams struct {
	Syllabus  string `json:"syllabus" validate:"notblank"`
	Timeframe string `json:"timeframe" validate:"notblank"`
}

func learningActions() []action {
	return []action{
		textAction[notesParams, string]{
			name:        "notes-summary",
			category:    "learning",
			tool:        "notes-summarizer",
			description: "Turn study notes into organized key points",
			mode:        ModeChat,
			failure:     "Failed to summarize notes",
			defaults:    func() notesParams { return notesParams{} },
			prompt: func(p notesParams) string {
				return fmt.Sprintf(`Summarize these study notes into key points:

%s

Create a well-organized summary with:
- Main topics and subtopics
- Key concepts and definitions
- Important facts and figures
- Bullet points for easy review
- Clear structure for studying

Make it study-friendly and easy to review.`, p.Notes)
			},
			normalize: asText,
		},
		textAction[contentParams, []normalize.Flashcard]{
			name:        "flashcards",
			category:    "learning",
			tool:        "flashcard-generator",
			description: "Create question and answer flashcards",
			mode:        ModeChat,
			failure:     "Failed to create flashcards",
			defaults:    func() contentParams { return contentParams{} },
			prompt: func(p contentParams) string {
				return fmt.Sprintf(`Create flashcards from this content:

%s

Generate 8-12 flashcards in JSON format:
[
  {"question": "Question here", "answer": "Answer here"},
  {"question": "Question here", "answer": "Answer here"}
]

Make questions:
- Clear and specific
- Testing key concepts
- Varying difficulty levels
- Good for memorization
- Comprehensive coverage`, p.Content)
			},
			normalize: structured(normalize.ParseFlashcards),
		},
		textAction[explainSimplyParams, string]{
			name:        "explain-simply",
			category:    "learning",
			tool:        "explain-like-im-five",
			description: "Explain a concept for a child of a given age",
			mode:        ModeChat,
			failure:     "Failed to explain concept",
			defaults:    func() explainSimplyParams { return explainSimplyParams{Age: 10} },
			prompt: func(p explainSimplyParams) string {
				return fmt.Sprintf(`Explain "%s" as if you're talking to a %d-year-old.

Use:
- Simple, everyday language
- Relatable examples and analogies
- Short sentences
- Fun comparisons
- Easy-to-understand concepts
- Engaging and friendly tone

Make it clear, fun, and memorable!`, p.Concept, p.Age)
			},
			normalize: asText,
		},
		textAction[quizParams, []normalize.QuizQuestion]{
			name:        "quiz",
			category:    "learning",
			tool:        "quiz-generator",
			description: "Build a multiple choice quiz from content",
			mode:        ModeChat,
			failure:     "Failed to generate quiz",
			defaults:    func() quizParams { return quizParams{Count: 5} },
			prompt: func(p quizParams) string {
				return fmt.Sprintf(`Create a %d-question multiple choice quiz from this content:

%s

Format as JSON array:
[
  {
    "question": "Question text",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct": 0,
    "explanation": "Why this answer is correct"
  }
]

Requirements:
- Test key concepts
- 4 options per question
- Clear, unambiguous questions
- Plausible distractors
- Good explanations`, p.Count, p.Content)
			},
			normalize: structured(normalize.ParseQuiz),
		},
		textAction[studyPlanParams, string]{
			name:        "study-plan",
			category:    "learning",
			tool:        "study-plan-generator",
			description: "Lay out a study schedule for a syllabus and timeframe",
			mode:        ModeChat,
			failure:     "Failed to create study plan",
			defaults:    func() studyPlanParams { return studyPlanParams{} },
			prompt: func(p studyPlanParams) string {
				return fmt.Sprintf(`Create a detailed study plan for this syllabus over %[1]s:

%[2]s

Include:
- Weekly breakdown
- Daily study goals
- Time allocation for each topic
- Review sessions
- Practice/assessment periods
- Buffer time for difficult topics
- Progress milestones

Make it realistic and achievable within the %[1]s timeframe.`, p.Timeframe, p.Syllabus)
			},
			normalize: asText,
		},
	}
}
