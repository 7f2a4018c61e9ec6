package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dylan1021/WeScholarly/internal/report"
	"github.com/Dylan1021/WeScholarly/pkg/llm"
	"github.com/gin-gonic/gin"
)

type ReportGenerator interface {
	Generate(ctx context.Context, apiKey, keywords string, gen llm.TextGenerator) (*report.Report, error)
}

// TextGeneratorFactory builds an LLM client from a per-request key.
type TextGeneratorFactory func(ctx context.Context, provider, apiKey string) (llm.TextGenerator, error)

type ReportHandler struct {
	reports  ReportGenerator
	provider string
	newGen   TextGeneratorFactory
}

func NewReportHandler(reports ReportGenerator, provider string) *ReportHandler {
	return &ReportHandler{
		reports:  reports,
		provider: provider,
		newGen:   llm.NewTextGenerator,
	}
}

// GenerateReport runs the daily digest pipeline. Credentials come from the
// request body: they live in the browser's local storage, not on the server.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.MPTextKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MPText API key is required"})
		return
	}

	var gen llm.TextGenerator
	if strings.TrimSpace(req.Keywords) != "" {
		var err error
		gen, err = h.newGen(c.Request.Context(), h.provider, req.GeminiKey)
		if err != nil {
			if errors.Is(err, llm.ErrMissingAPIKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "AI API key is required for keyword filtering"})
				return
			}
			slog.Error("error creating LLM client", "provider", h.provider, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize AI client"})
			return
		}
	}

	rep, err := h.reports.Generate(c.Request.Context(), req.MPTextKey, req.Keywords, gen)
	if err != nil {
		slog.Error("error generating report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating report."})
		return
	}

	slog.Info("report generated", "articles", len(rep.Articles), "status", rep.Status, "failed_accounts", len(rep.FailedAccounts))

	c.JSON(http.StatusOK, rep)
}
