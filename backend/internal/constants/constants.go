package constants

// Recently used tools
const (
	// MaxRecentTools is the capacity of a client's recently-used list
	MaxRecentTools = 5
)

// Chat constants
const (
	// ChatContextMessages is how many trailing messages are sent as context with the next chat turn
	ChatContextMessages = 10
)

// List output constants
const (
	// ListDelimiter is the separator prompts ask the model to place between list items
	ListDelimiter = "---"
)

// Count ranges. Callers clamp into these before a prompt is built.
const (
	MinTweets    = 1
	MaxTweets    = 5
	MinIdeas     = 3
	MaxIdeas     = 10
	MinAppNames  = 3
	MaxAppNames  = 20
	MinHeadlines = 3
	MaxHeadlines = 10
	MinSlogans   = 3
	MaxSlogans   = 10
	MinQuiz      = 1
	MaxQuiz      = 20
	MinCalendar  = 1
	MaxCalendar  = 31
	MinAge       = 5
	MaxAge       = 18
	MinImages    = 1
	MaxImages    = 6
)

// Hashtag limits per platform. Enforced through the prompt only.
var HashtagLimits = map[string]int{
	"instagram": 30,
	"twitter":   2,
	"linkedin":  5,
	"tiktok":    5,
}

// DefaultHashtagLimit applies to platforms missing from HashtagLimits
const DefaultHashtagLimit = 5

// Provider names used in errors, logs and metrics
const (
	ProviderChat         = "chat-completion"
	ProviderPollinations = "pollinations"
)
