package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dylan1021/WeScholarly/pkg/llm"
	"github.com/gin-gonic/gin"
)

type SummarizeHandler struct {
	provider string
	newGen   TextGeneratorFactory
}

func NewSummarizeHandler(provider string) *SummarizeHandler {
	return &SummarizeHandler{
		provider: provider,
		newGen:   llm.NewTextGenerator,
	}
}

// SummarizeArticle produces a free-text summary of one article's page
// content, previously fetched through the download proxy.
func (h *SummarizeHandler) SummarizeArticle(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	gen, err := h.newGen(c.Request.Context(), h.provider, req.GeminiKey)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "AI API key is required"})
			return
		}
		slog.Error("error creating LLM client", "provider", h.provider, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize AI client"})
		return
	}

	summary, err := llm.SummarizeArticle(c.Request.Context(), gen, req.Content)
	if err != nil {
		slog.Error("error summarizing article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Summarization failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
