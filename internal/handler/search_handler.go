package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Dylan1021/WeScholarly/pkg/mptext"
	"github.com/gin-gonic/gin"
)

// searchPageSize matches the UI's fixed search result count.
const searchPageSize = 5

type AccountSearcher interface {
	SearchAccounts(ctx context.Context, apiKey, keyword string, size int) ([]mptext.AccountResult, error)
}

type SearchHandler struct {
	search AccountSearcher
}

func NewSearchHandler(search AccountSearcher) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) SearchAccounts(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	if req.MPTextKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MPText API key is required"})
		return
	}

	results, err := h.search.SearchAccounts(c.Request.Context(), req.MPTextKey, req.Keyword, searchPageSize)
	if err != nil {
		slog.Error("account search failed", "keyword", req.Keyword, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	if results == nil {
		results = []mptext.AccountResult{}
	}

	c.JSON(http.StatusOK, gin.H{"list": results})
}
