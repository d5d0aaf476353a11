package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/rag"
)

// AskDocumentsTool answers questions from the indexed document folder
type AskDocumentsTool struct {
	service *rag.Service
}

// NewAskDocumentsTool creates a new document question tool
func NewAskDocumentsTool(service *rag.Service) *AskDocumentsTool {
	return &AskDocumentsTool{service: service}
}

func (t *AskDocumentsTool) Name() string {
	return "ask_documents"
}

func (t *AskDocumentsTool) Description() string {
	return `Answer a question using the most relevant passages of the indexed resumes and documents.
Returns the answer and the passages it was based on, with similarity scores.`
}

func (t *AskDocumentsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": stringProperty("Question about the indexed documents"),
		},
		"required": []string{"query"},
	}
}

func (t *AskDocumentsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in models.AskRequest
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}
	if strings.TrimSpace(in.Query) == "" {
		return NewErrorResult("query is required")
	}

	answer, err := t.service.Ask(ctx, in.Query)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("Error getting response: %v", err))
	}

	return NewSuccessResult(models.AskResponse{
		Answer:  answer.Text,
		Sources: answer.Sources,
	})
}
