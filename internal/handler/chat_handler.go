package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iopap1/nvidia-chatbot/internal/answer"
)

type Chatter interface {
	Chat(ctx context.Context, question string) (answer.ChatResult, error)
}

type ChatHandler struct {
	service Chatter
}

func NewChatHandler(service Chatter) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) PostChat(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	res, err := h.service.Chat(c.Request.Context(), req.Question)
	if err != nil {
		slog.Error("chat pipeline failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Answer: res.Answer, UsedNews: res.UsedNews})
}
