package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iopap1/nvidia-chatbot/internal/answer"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

type Asker interface {
	Ask(ctx context.Context, question string) (answer.Result, error)
}

type AskHandler struct {
	service Asker
}

func NewAskHandler(service Asker) *AskHandler {
	return &AskHandler{service: service}
}

func (h *AskHandler) PostAsk(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	res, err := h.service.Ask(c.Request.Context(), req.Question)
	if err != nil {
		slog.Error("ask pipeline failed", "error", err)

		// Pipeline failures keep HTTP 200; the error travels in the body.
		var statusErr *news.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(http.StatusOK, gin.H{"error": "News API HTTP error: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"answer": res.Answer, "mode": res.Mode}
	if res.Mode == answer.ModeNews {
		body["articles"] = res.Articles
	}

	c.JSON(http.StatusOK, body)
}
