package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dylan1021/WeScholarly/internal/model"
	"github.com/Dylan1021/WeScholarly/pkg/llm"
)

// pageSize is how many recent articles are requested per account. Articles
// older than yesterday fall out of the window anyway.
const pageSize = 8

const secondsPerDay = 86400

type AccountLister interface {
	List() ([]model.Account, error)
}

type ArticleSource interface {
	RecentArticles(ctx context.Context, apiKey, fakeid string, size int) ([]model.Article, error)
}

// Report is the ordered set of articles surfaced for yesterday, plus a
// human-readable outcome. FailedAccounts lists accounts whose fetch failed;
// their absence from Articles is silent otherwise.
type Report struct {
	Articles       []model.ReportArticle `json:"articles"`
	Status         string                `json:"status"`
	FailedAccounts []string              `json:"failed_accounts,omitempty"`
}

// Generator produces the daily digest. Credentials and the text model arrive
// per invocation; the generator itself holds no secrets.
type Generator struct {
	accounts AccountLister
	source   ArticleSource
	now      func() time.Time
}

func NewGenerator(accounts AccountLister, source ArticleSource) *Generator {
	return &Generator{
		accounts: accounts,
		source:   source,
		now:      time.Now,
	}
}

const reportPromptTemplate = `I have a list of WeChat articles published yesterday.
My interests/keywords are: %s

Please filter this list and return ONLY the articles that are relevant to my interests.

Return the result as a JSON array of objects. Each object must have:
- "id": The ID provided in the input (integer)
- "reason": A brief 1-sentence explanation of why it matches my interests.

If no articles match, return an empty array [].
Do not include any markdown formatting, just the raw JSON string.

Articles:
%s`

type relevanceMatch struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// Generate runs the pipeline: compute yesterday's window, collect each
// account's articles inside it, and when keywords are set, ask the model once
// which candidates are relevant. Per-account fetch failures are skipped; a
// malformed model response degrades to the unfiltered list. An error is
// returned only when the model request itself fails.
func (g *Generator) Generate(ctx context.Context, apiKey, keywords string, gen llm.TextGenerator) (*Report, error) {
	accounts, err := g.accounts.List()
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	from, to := g.yesterdayWindow()

	var candidates []model.ReportArticle
	var failed []string

	for _, acc := range accounts {
		articles, err := g.source.RecentArticles(ctx, apiKey, acc.FakeID, pageSize)
		if err != nil {
			slog.Warn("skipping account after fetch failure", "account", acc.Name, "error", err)
			failed = append(failed, acc.Name)
			continue
		}

		for _, a := range articles {
			if a.CreateTime >= from && a.CreateTime < to {
				candidates = append(candidates, model.ReportArticle{
					Article:     a,
					AccountName: acc.Name,
					AccountID:   acc.ID,
				})
			}
		}
	}

	if len(candidates) == 0 {
		return &Report{
			Articles:       []model.ReportArticle{},
			Status:         "No articles found for yesterday.",
			FailedAccounts: failed,
		}, nil
	}

	if strings.TrimSpace(keywords) == "" {
		return &Report{
			Articles:       candidates,
			Status:         fmt.Sprintf("Found %d articles.", len(candidates)),
			FailedAccounts: failed,
		}, nil
	}

	if gen == nil {
		return nil, llm.ErrMissingAPIKey
	}

	prompt := buildPrompt(keywords, candidates)

	responseText, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("relevance analysis: %w", err)
	}

	matched, ok := mapMatches(responseText, candidates)
	if !ok {
		return &Report{
			Articles:       candidates,
			Status:         "AI analysis failed. Showing all articles.",
			FailedAccounts: failed,
		}, nil
	}

	return &Report{
		Articles:       matched,
		Status:         fmt.Sprintf("Found %d relevant articles.", len(matched)),
		FailedAccounts: failed,
	}, nil
}

// yesterdayWindow returns [startOfYesterday, startOfYesterday+24h) in local
// epoch seconds.
func (g *Generator) yesterdayWindow() (int64, int64) {
	now := g.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	from := start.Unix()
	return from, from + secondsPerDay
}

func buildPrompt(keywords string, candidates []model.ReportArticle) string {
	entries := make([]string, len(candidates))
	for i, a := range candidates {
		entries[i] = fmt.Sprintf("ID: %d\nTitle: %s\nDigest: %s\nAccount: %s\n", i, a.Title, a.Digest, a.AccountName)
	}
	return fmt.Sprintf(reportPromptTemplate, strings.TrimSpace(keywords), strings.Join(entries, "\n---\n"))
}

// mapMatches parses the model's {id, reason} array and maps each entry back to
// its candidate by positional index. Any parse failure, out-of-range index, or
// duplicate index makes the whole response malformed.
func mapMatches(responseText string, candidates []model.ReportArticle) ([]model.ReportArticle, bool) {
	cleaned := cleanJSONResponse(responseText)

	var matches []relevanceMatch
	if err := json.Unmarshal([]byte(cleaned), &matches); err != nil {
		slog.Error("failed to parse relevance response", "error", err, "response", responseText)
		return nil, false
	}

	seen := make(map[int]bool, len(matches))
	result := make([]model.ReportArticle, 0, len(matches))

	for _, m := range matches {
		if m.ID < 0 || m.ID >= len(candidates) {
			slog.Error("relevance response index out of range", "id", m.ID, "candidates", len(candidates))
			return nil, false
		}
		if seen[m.ID] {
			slog.Error("relevance response repeats index", "id", m.ID)
			return nil, false
		}
		seen[m.ID] = true

		article := candidates[m.ID]
		article.Reason = m.Reason
		result = append(result, article)
	}

	return result, true
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
