package mptext

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dylan1021/WeScholarly/internal/model"
	"github.com/Dylan1021/WeScholarly/pkg/proxy"
)

const DefaultBaseURL = "https://down.mptext.top/api/public/v1"

// AccountResult is one entry from the account search endpoint.
type AccountResult struct {
	Nickname     string `json:"nickname"`
	FakeID       string `json:"fakeid"`
	Alias        string `json:"alias"`
	RoundHeadImg string `json:"round_head_img"`
}

// Client talks to the MPText content API through the generic forwarder.
// Authentication is an X-Auth-Key header supplied per call, since the key
// lives in the browser, not on the server.
type Client struct {
	forwarder *proxy.Forwarder
	baseURL   string
}

func NewClient(forwarder *proxy.Forwarder, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{forwarder: forwarder, baseURL: baseURL}
}

// listEnvelope covers the three shapes the upstream uses for list payloads.
type listEnvelope struct {
	Articles json.RawMessage `json:"articles"`
	List     json.RawMessage `json:"list"`
	Data     json.RawMessage `json:"data"`
	Msg      string          `json:"msg"`
}

func (e *listEnvelope) payload() json.RawMessage {
	if len(e.Articles) > 0 && string(e.Articles) != "null" {
		return e.Articles
	}
	if len(e.List) > 0 && string(e.List) != "null" {
		return e.List
	}
	return e.Data
}

// RecentArticles returns the account's most recent articles, newest first,
// up to size entries.
func (c *Client) RecentArticles(ctx context.Context, apiKey, fakeid string, size int) ([]model.Article, error) {
	status, body, err := c.forwarder.ForwardJSON(ctx, proxy.Request{
		URL:     c.baseURL + "/article",
		Headers: map[string]string{"X-Auth-Key": apiKey},
		Params:  map[string]string{"fakeid": fakeid, "size": strconv.Itoa(size)},
	})
	if err != nil {
		return nil, fmt.Errorf("mptext articles: %w", err)
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("mptext decode articles: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("mptext articles: upstream status %d: %s", status, envelope.Msg)
	}

	raw := envelope.payload()
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var articles []model.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, fmt.Errorf("mptext decode article list: %w", err)
	}

	return articles, nil
}

// SearchAccounts looks up official accounts matching the keyword.
func (c *Client) SearchAccounts(ctx context.Context, apiKey, keyword string, size int) ([]AccountResult, error) {
	status, body, err := c.forwarder.ForwardJSON(ctx, proxy.Request{
		URL:     c.baseURL + "/account",
		Headers: map[string]string{"X-Auth-Key": apiKey},
		Params:  map[string]string{"keyword": keyword, "size": strconv.Itoa(size)},
	})
	if err != nil {
		return nil, fmt.Errorf("mptext search: %w", err)
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("mptext decode search: %w", err)
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("mptext search: upstream status %d: %s", status, envelope.Msg)
	}

	raw := envelope.payload()
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var results []AccountResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("mptext decode account list: %w", err)
	}

	return results, nil
}
