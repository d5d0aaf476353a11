package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/models"
)

// ResumeFeedbackTool runs the coaching pipeline on resume and job description text
type ResumeFeedbackTool struct {
	coach *coach.Coach
}

// NewResumeFeedbackTool creates a new feedback tool
func NewResumeFeedbackTool(c *coach.Coach) *ResumeFeedbackTool {
	return &ResumeFeedbackTool{coach: c}
}

func (t *ResumeFeedbackTool) Name() string {
	return "resume_feedback"
}

func (t *ResumeFeedbackTool) Description() string {
	return `Compare a resume with a job description using current market trends.
Input must include resume_text and jd_text. Mode is "Concise Tips" (default) or "Detailed Rewrite".
Returns the extracted sections, the trends used and the generated feedback.`
}

func (t *ResumeFeedbackTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": stringProperty("Plain text of the resume"),
			"jd_text":     stringProperty("Plain text of the job description"),
			"mode": map[string]interface{}{
				"type":        "string",
				"enum":        []string{string(models.ModeConciseTips), string(models.ModeDetailedRewrite)},
				"description": "Feedback style",
			},
			"trend_query": stringProperty("Optional market trend search query"),
		},
		"required": []string{"resume_text", "jd_text"},
	}
}

func (t *ResumeFeedbackTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in models.FeedbackRequest
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}

	mode, ok := models.ParseFeedbackMode(in.Mode)
	if !ok {
		return NewErrorResult(fmt.Sprintf("unknown mode %q", in.Mode))
	}

	output, err := t.coach.Feedback(ctx, coach.FeedbackInput{
		ResumeText: in.ResumeText,
		JDText:     in.JDText,
		Mode:       mode,
		TrendQuery: in.TrendQuery,
		Focus:      in.Focus,
	})
	if err != nil {
		return NewErrorResult(fmt.Sprintf("feedback failed: %v", err))
	}

	return NewSuccessResult(models.FeedbackResponse{
		JDSections:     output.JDSections,
		ResumeSections: output.ResumeSections,
		Trends:         output.Trends,
		TrendsDegraded: output.TrendsDegraded,
		TrendsError:    output.TrendsError,
		Mode:           string(output.Mode),
		Feedback:       output.Feedback,
	})
}
