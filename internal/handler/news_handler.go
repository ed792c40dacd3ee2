package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iopap1/nvidia-chatbot/internal/answer"
	"github.com/iopap1/nvidia-chatbot/pkg/news"
)

type NewsFetcher interface {
	News(ctx context.Context, q news.Query) (answer.NewsResult, error)
}

type NewsHandler struct {
	service NewsFetcher
	topic   string
}

func NewNewsHandler(service NewsFetcher, topic string) *NewsHandler {
	return &NewsHandler{service: service, topic: topic}
}

func (h *NewsHandler) PostNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.News(c.Request.Context(), req.withDefaults(h.topic))
	if err != nil {
		slog.Error("news pipeline failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, NewsResponse{Summary: res.Summary, Articles: res.Articles})
}
