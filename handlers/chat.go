package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecoach/backend/auth"
	"github.com/resumecoach/backend/chat"
	"github.com/resumecoach/backend/models"
)

// ChatHandler handles free-form chat sessions
type ChatHandler struct {
	store      *chat.Store
	jwtService *auth.JWTService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(store *chat.Store, jwtService *auth.JWTService) *ChatHandler {
	return &ChatHandler{
		store:      store,
		jwtService: jwtService,
	}
}

// CreateSession starts a chat session and returns its bearer token
// @Summary Start chat session
// @Description Create an in-memory chat session. Use the returned token as a Bearer token for message endpoints.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.CreateSessionRequest false "Session options"
// @Success 201 {object} models.CreateSessionResponse "Session created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /chat/sessions [post]
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
	}

	session := h.store.Create(req.SystemPrompt)
	token, err := h.jwtService.GenerateToken(session.ID)
	if err != nil {
		_ = h.store.Delete(session.ID)
		respondError(c, err, "Failed to issue session token")
		return
	}

	c.JSON(http.StatusCreated, models.CreateSessionResponse{
		SessionID: session.ID,
		Token:     token,
	})
}

// SendMessage sends a user message and returns the assistant reply
// @Summary Send chat message
// @Description Append a message to the session and reply using the full conversation history
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatRequest true "Message"
// @Success 200 {object} models.ChatResponse "Assistant reply"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Failure 502 {object} models.ErrorResponse "Model call failed"
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	claims := auth.GetSessionClaims(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	reply, err := h.store.Send(c.Request.Context(), claims.SessionID, req.Message)
	if err != nil {
		respondError(c, err, "Error getting response")
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// GetHistory returns the messages of the current session
// @Summary Get chat history
// @Description List the messages exchanged in the session, oldest first
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ChatHistoryResponse "Chat history"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /chat/messages [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	claims := auth.GetSessionClaims(c)

	session, err := h.store.Get(claims.SessionID)
	if err != nil {
		respondError(c, err, "Session not found")
		return
	}

	c.JSON(http.StatusOK, models.ChatHistoryResponse{
		SessionID: session.ID,
		Messages:  session.Messages,
	})
}

// ClearHistory empties the current session's history
// @Summary Clear chat history
// @Description Remove all messages from the session; the token stays valid
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 204 "History cleared"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /chat/messages [delete]
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	claims := auth.GetSessionClaims(c)

	if err := h.store.Clear(claims.SessionID); err != nil {
		respondError(c, err, "Session not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// EndSession deletes the current session
// @Summary End chat session
// @Description Delete the session and its history
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 204 "Session deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Session not found"
// @Router /chat/sessions [delete]
func (h *ChatHandler) EndSession(c *gin.Context) {
	claims := auth.GetSessionClaims(c)

	if err := h.store.Delete(claims.SessionID); err != nil {
		respondError(c, err, "Session not found")
		return
	}
	c.Status(http.StatusNoContent)
}
