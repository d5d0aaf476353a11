package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/rag"
)

// AskHandler answers questions over the indexed document folder
type AskHandler struct {
	service *rag.Service
}

// NewAskHandler creates a new ask handler. A nil service disables the endpoint.
func NewAskHandler(service *rag.Service) *AskHandler {
	return &AskHandler{service: service}
}

// Ask answers a question from the most relevant indexed passages
// @Summary Ask the document folder
// @Description Retrieve the passages most similar to the query and answer from them
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.AskRequest true "Question"
// @Success 200 {object} models.AskResponse "Answer"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Model call failed"
// @Failure 503 {object} models.ErrorResponse "Document chat not configured"
// @Router /ask [post]
func (h *AskHandler) Ask(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Document chat is not configured",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}

	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		badRequest(c, "Query is required")
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err, "Error getting response")
		return
	}

	sources := answer.Sources
	if sources == nil {
		sources = []models.ScoredChunk{}
	}
	c.JSON(http.StatusOK, models.AskResponse{
		Answer:  answer.Text,
		Sources: sources,
	})
}

// Documents lists the indexed files
// @Summary List indexed documents
// @Description List the files indexed for document chat and the number of chunks
// @Tags Documents
// @Produce json
// @Success 200 {object} map[string]interface{} "Indexed files"
// @Failure 503 {object} models.ErrorResponse "Document chat not configured"
// @Router /documents [get]
func (h *AskHandler) Documents(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Document chat is not configured",
			Code:  http.StatusServiceUnavailable,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"files":  h.service.Files(),
		"chunks": h.service.Len(),
	})
}
