package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bodhify/go-site-backend/internal/chat"
	"github.com/bodhify/go-site-backend/internal/services"
)

// The chat widget renders whatever lands in "reply", so every outcome of
// this endpoint, including failures, is reply-shaped. Status codes still
// signal success vs failure for anything that inspects them.
const (
	msgChatKeyMissing = "Gemini API key is missing on the server."
	msgChatEmpty      = "Please enter a message."
	msgChatTooLong    = "Message is too long."
)

// ChatRequest is the JSON payload of the chat widget.
type ChatRequest struct {
	Message string `json:"message" example:"What services do you offer?"`
}

// ChatResponse carries the assistant reply back to the widget.
type ChatResponse struct {
	Reply string `json:"reply" example:"We build websites, apps, and AI chatbots."`
}

// Chat godoc
// @ID          chat
// @Summary     Ask the site assistant
// @Description Forwards a visitor message to the configured language-model
// @Description provider and returns its reply. All outcomes, including
// @Description failures, use the {"reply": ...} shape.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Visitor message"
//
// @Success     200  {object}  handlers.ChatResponse
// @Failure     400  {object}  handlers.ChatResponse "Empty or oversized message"
// @Failure     500  {object}  handlers.ChatResponse "Missing key or provider failure"
// @Router      /chatbot [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		chatReply(c, http.StatusBadRequest, msgChatEmpty)
		return
	}

	reply, err := h.assistantSvc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		var pe *chat.ProviderError
		switch {
		case errors.Is(err, services.ErrMissingAPIKey):
			chatReply(c, http.StatusInternalServerError, msgChatKeyMissing)
		case errors.Is(err, services.ErrEmptyMessage):
			chatReply(c, http.StatusBadRequest, msgChatEmpty)
		case errors.Is(err, services.ErrMessageTooLarge):
			chatReply(c, http.StatusBadRequest, msgChatTooLong)
		case errors.As(err, &pe):
			chatReply(c, http.StatusInternalServerError, "Gemini API error: "+pe.Body)
		default:
			chatReply(c, http.StatusInternalServerError, "Server error: "+err.Error())
		}
		return
	}

	ok(c, http.StatusOK, ChatResponse{Reply: reply})
}
