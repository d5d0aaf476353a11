package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/trends"
)

// DocumentHandler exposes section extraction and market trends
type DocumentHandler struct {
	uploads      uploadReader
	fetcher      trends.Fetcher
	defaultQuery string
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(extractor *document.Extractor, fetcher trends.Fetcher, defaultQuery string, maxUploadMB int) *DocumentHandler {
	return &DocumentHandler{
		uploads:      newUploadReader(extractor, maxUploadMB),
		fetcher:      fetcher,
		defaultQuery: defaultQuery,
	}
}

// Sections extracts education, experience and skills sections
// @Summary Extract sections
// @Description Split a resume or job description into education, experience and skills sections by heading keywords
// @Tags Documents
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.SectionsRequest false "Text to split (JSON)"
// @Param file formData file false "Document file (PDF or TXT)"
// @Success 200 {object} models.SectionsResponse "Sections"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 422 {object} models.ErrorResponse "Unreadable document"
// @Router /sections [post]
func (h *DocumentHandler) Sections(c *gin.Context) {
	var req models.SectionsRequest

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		text, ok, err := h.uploads.read(c, "file")
		if err != nil {
			respondError(c, err, "Failed to read file")
			return
		}
		if ok {
			req.Text = text
		} else {
			req.Text = c.PostForm("text")
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "Text or file is required")
		return
	}

	sections := document.ExtractSections(req.Text)
	c.JSON(http.StatusOK, models.SectionsResponse{
		Sections: sections,
		Labels:   sections.Labels(),
	})
}

// Trends fetches current market trend snippets
// @Summary Fetch market trends
// @Description Fetch up to five market trend snippets for a query. Falls back to a fixed message when nothing is found; degraded is set in that case.
// @Tags Trends
// @Accept json
// @Produce json
// @Param request body models.TrendsRequest false "Trend query"
// @Success 200 {object} models.TrendsResponse "Trend snippets"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /trends [post]
func (h *DocumentHandler) Trends(c *gin.Context) {
	var req models.TrendsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		query = h.defaultQuery
	}

	result := trends.Resolve(c.Request.Context(), h.fetcher, query)
	c.JSON(http.StatusOK, models.TrendsResponse{
		Query:    query,
		Trends:   result.Trends,
		Degraded: result.Degraded,
		Reason:   result.Reason,
	})
}
