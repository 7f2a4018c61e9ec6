package handler

import (
	"log/slog"
	"net/http"

	"github.com/Dylan1021/WeScholarly/pkg/proxy"
	"github.com/gin-gonic/gin"
)

type ProxyHandler struct {
	forwarder *proxy.Forwarder
}

func NewProxyHandler(forwarder *proxy.Forwarder) *ProxyHandler {
	return &ProxyHandler{forwarder: forwarder}
}

// ForwardMPText relays an arbitrary JSON request to the content API and
// hands the upstream status and body back untouched.
func (h *ProxyHandler) ForwardMPText(c *gin.Context) {
	var req ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	slog.Info("proxying request", "url", req.URL, "method", req.Method)

	status, body, err := h.forwarder.ForwardJSON(c.Request.Context(), req)
	if err != nil {
		slog.Error("proxy request failed", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Proxy request failed", "details": err.Error()})
		return
	}

	c.Data(status, "application/json", body)
}

// DownloadContent relays a GET and returns the body as raw text, for article
// pages the summarizer consumes.
func (h *ProxyHandler) DownloadContent(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	status, body, err := h.forwarder.Download(c.Request.Context(), req.URL, req.Headers)
	if err != nil {
		slog.Error("download proxy failed", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Download failed"})
		return
	}

	c.Data(status, "text/plain; charset=utf-8", body)
}
