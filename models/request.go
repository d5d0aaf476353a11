package models

// FeedbackRequest is the JSON form of a coaching request
// @Description Resume feedback request with resume and job description text
type FeedbackRequest struct {
	ResumeText string `json:"resume_text" example:"Skills\nGo, Rust"`
	JDText     string `json:"jd_text" example:"Skills\nRequires: Python, Kubernetes"`
	Mode       string `json:"mode,omitempty" example:"Concise Tips"`
	TrendQuery string `json:"trend_query,omitempty" example:"top skills for AI engineering roles in 2025"`
	Focus      bool   `json:"focus,omitempty" example:"false"`
}

// FeedbackResponse is the coaching result
// @Description Extracted sections, market trends and generated feedback
type FeedbackResponse struct {
	JDSections     SectionMap `json:"jd_sections"`
	ResumeSections SectionMap `json:"resume_sections"`
	Trends         []string   `json:"trends"`
	TrendsDegraded bool       `json:"trends_degraded,omitempty" example:"false"`
	TrendsError    string     `json:"trends_error,omitempty"`
	Mode           string     `json:"mode" example:"Concise Tips"`
	Feedback       string     `json:"feedback" example:"- Add Python and Kubernetes projects"`
}

// SectionsRequest asks for section extraction from raw text
// @Description Section extraction request
type SectionsRequest struct {
	Text string `json:"text" example:"Education\nBSc Computer Science\nSkills\nGo"`
}

// SectionsResponse holds extracted sections
// @Description Extracted sections
type SectionsResponse struct {
	Sections SectionMap `json:"sections"`
	Labels   []string   `json:"labels"`
}

// TrendsRequest asks for market trend snippets
// @Description Market trend query
type TrendsRequest struct {
	Query string `json:"query" example:"top skills for AI engineering roles in 2025"`
}

// TrendsResponse holds trend snippets; Degraded is set when the fallback list was used
// @Description Market trend snippets
type TrendsResponse struct {
	Query    string   `json:"query"`
	Trends   []string `json:"trends"`
	Degraded bool     `json:"degraded,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// AskRequest is a question over the indexed document folder
// @Description Question for document chat
type AskRequest struct {
	Query string `json:"query" example:"Which cloud platforms has the candidate used?"`
}

// AskResponse is the grounded answer plus the passages it was built from
// @Description Answer generated from the most relevant passages
type AskResponse struct {
	Answer  string        `json:"answer"`
	Sources []ScoredChunk `json:"sources"`
}

// CreateSessionRequest starts a chat session
// @Description Chat session options
type CreateSessionRequest struct {
	SystemPrompt string `json:"system_prompt,omitempty" example:"You are a helpful career coach."`
}

// CreateSessionResponse returns the new session and its bearer token
// @Description New chat session
type CreateSessionResponse struct {
	SessionID string `json:"session_id" example:"4f6c1f0e-6a57-4a55-9d1f-6d2f6c9f6e11"`
	Token     string `json:"token"`
}

// ChatRequest is a user message within a session
// @Description Chat message
type ChatRequest struct {
	Message string `json:"message" example:"Can you improve my summary?"`
}

// ChatResponse returns the assistant reply
// @Description Assistant reply
type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatHistoryResponse lists the messages of a session
// @Description Chat history
type ChatHistoryResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"resume is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
