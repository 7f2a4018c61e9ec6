package handler

import "github.com/Dylan1021/WeScholarly/pkg/proxy"

type AccountResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	FakeID  string `json:"fakeid"`
	AddedAt string `json:"added_at"`
}

type AddAccountRequest struct {
	Name   string `json:"name"`
	FakeID string `json:"fakeid"`
}

// ProxyRequest mirrors proxy.Request; the UI posts it verbatim.
type ProxyRequest = proxy.Request

type DownloadRequest struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

type ReportRequest struct {
	MPTextKey string `json:"mptext_key"`
	GeminiKey string `json:"gemini_key"`
	Keywords  string `json:"keywords"`
}

type SearchRequest struct {
	MPTextKey string `json:"mptext_key"`
	Keyword   string `json:"keyword"`
}

type SummarizeRequest struct {
	GeminiKey string `json:"gemini_key"`
	Content   string `json:"content"`
}
