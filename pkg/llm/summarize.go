package llm

import (
	"context"
	"fmt"
	"regexp"
)

// maxContentChars caps the text sent to the model. The cut is blunt and may
// land mid-sentence.
const maxContentChars = 30000

var htmlTagPattern = regexp.MustCompile(`<[^>]*>?`)

const summarizePrompt = `You are a helpful assistant. Please summarize the following WeChat article content.
Focus on the key points and insights.

Content:
%s`

// SummarizeArticle strips HTML from the raw page content, truncates it, and
// asks the model for a summary in one request.
func SummarizeArticle(ctx context.Context, gen TextGenerator, content string) (string, error) {
	clean := htmlTagPattern.ReplaceAllString(content, "")
	if len(clean) > maxContentChars {
		clean = clean[:maxContentChars]
	}

	return gen.Generate(ctx, fmt.Sprintf(summarizePrompt, clean))
}
