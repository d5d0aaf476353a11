package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/models"
)

// FeedbackHandler handles resume coaching requests
type FeedbackHandler struct {
	coach   *coach.Coach
	uploads uploadReader
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(c *coach.Coach, extractor *document.Extractor, maxUploadMB int) *FeedbackHandler {
	return &FeedbackHandler{
		coach:   c,
		uploads: newUploadReader(extractor, maxUploadMB),
	}
}

// Feedback compares a resume with a job description and returns tailored feedback
// @Summary Get resume feedback
// @Description Compare a resume with a job description, fetch current market trends and generate concise tips or a detailed rewrite
// @Tags Coach
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.FeedbackRequest false "Feedback request (JSON)"
// @Param resume_file formData file false "Resume file (PDF or TXT)"
// @Param resume_text formData string false "Resume text"
// @Param jd_file formData file false "Job description file (PDF or TXT)"
// @Param jd_text formData string false "Job description text"
// @Param mode formData string false "Feedback mode: Concise Tips or Detailed Rewrite"
// @Param trend_query formData string false "Market trend search query"
// @Param focus formData bool false "Append the resume passages most relevant to the job description"
// @Success 200 {object} models.FeedbackResponse "Feedback"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 422 {object} models.ErrorResponse "Unreadable document"
// @Failure 502 {object} models.ErrorResponse "Model call failed"
// @Router /feedback [post]
func (h *FeedbackHandler) Feedback(c *gin.Context) {
	var req models.FeedbackRequest

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		if !h.bindMultipart(c, &req) {
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		badRequest(c, "Resume file or text is required")
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		badRequest(c, "Job description file or text is required")
		return
	}

	mode, ok := models.ParseFeedbackMode(req.Mode)
	if !ok {
		badRequest(c, "mode must be 'Concise Tips' or 'Detailed Rewrite'")
		return
	}

	output, err := h.coach.Feedback(c.Request.Context(), coach.FeedbackInput{
		ResumeText: req.ResumeText,
		JDText:     req.JDText,
		Mode:       mode,
		TrendQuery: req.TrendQuery,
		Focus:      req.Focus,
	})
	if err != nil {
		respondError(c, err, "Feedback generation failed")
		return
	}

	c.JSON(http.StatusOK, models.FeedbackResponse{
		JDSections:     output.JDSections,
		ResumeSections: output.ResumeSections,
		Trends:         output.Trends,
		TrendsDegraded: output.TrendsDegraded,
		TrendsError:    output.TrendsError,
		Mode:           string(output.Mode),
		Feedback:       output.Feedback,
	})
}

// bindMultipart fills req from form fields; uploaded files win over text fields
func (h *FeedbackHandler) bindMultipart(c *gin.Context, req *models.FeedbackRequest) bool {
	req.ResumeText = c.PostForm("resume_text")
	req.JDText = c.PostForm("jd_text")
	req.Mode = c.PostForm("mode")
	req.TrendQuery = c.PostForm("trend_query")
	req.Focus, _ = strconv.ParseBool(c.PostForm("focus"))

	if text, ok, err := h.uploads.read(c, "resume_file"); err != nil {
		respondError(c, err, "Failed to read resume file")
		return false
	} else if ok {
		req.ResumeText = text
	}

	if text, ok, err := h.uploads.read(c, "jd_file"); err != nil {
		respondError(c, err, "Failed to read job description file")
		return false
	} else if ok {
		req.JDText = text
	}

	return true
}
