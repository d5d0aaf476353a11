package models

import "time"

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a chat session
type ChatMessage struct {
	Role      string    `json:"role" example:"user"`
	Content   string    `json:"content" example:"How should I describe my Kubernetes work?"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// FeedbackMode selects the instruction appended to the coaching prompt
type FeedbackMode string

const (
	ModeConciseTips     FeedbackMode = "Concise Tips"
	ModeDetailedRewrite FeedbackMode = "Detailed Rewrite"
)

// ParseFeedbackMode accepts the display names as well as short aliases.
// An empty value selects Concise Tips.
func ParseFeedbackMode(s string) (FeedbackMode, bool) {
	switch s {
	case "", string(ModeConciseTips), "concise", "tips", "concise_tips":
		return ModeConciseTips, true
	case string(ModeDetailedRewrite), "detailed", "rewrite", "detailed_rewrite":
		return ModeDetailedRewrite, true
	default:
		return "", false
	}
}
