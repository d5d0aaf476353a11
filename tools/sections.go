package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/models"
)

// ExtractSectionsTool splits a document into education, experience and skills
type ExtractSectionsTool struct{}

// NewExtractSectionsTool creates a new section extraction tool
func NewExtractSectionsTool() *ExtractSectionsTool {
	return &ExtractSectionsTool{}
}

func (t *ExtractSectionsTool) Name() string {
	return "extract_sections"
}

func (t *ExtractSectionsTool) Description() string {
	return `Split resume or job description text into sections by heading keywords.
Recognised sections are education, experience and skills.
Text before the first recognised heading is ignored.`
}

func (t *ExtractSectionsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": stringProperty("Plain text of the resume or job description"),
		},
		"required": []string{"text"},
	}
}

// ExtractSectionsInput represents the input for section extraction
type ExtractSectionsInput struct {
	Text string `json:"text"`
}

// ExtractSectionsOutput holds the sections found
type ExtractSectionsOutput struct {
	Sections models.SectionMap `json:"sections"`
	Labels   []string          `json:"labels"`
}

func (t *ExtractSectionsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ExtractSectionsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}
	if strings.TrimSpace(in.Text) == "" {
		return NewErrorResult("text is required")
	}

	sections := document.ExtractSections(in.Text)
	return NewSuccessResult(ExtractSectionsOutput{
		Sections: sections,
		Labels:   sections.Labels(),
	})
}
