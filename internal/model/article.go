package model

// Article is one upstream article entry. Never persisted; produced fresh on
// each report generation and discarded afterwards.
type Article struct {
	Title      string `json:"title"`
	Digest     string `json:"digest"`
	Link       string `json:"link"`
	CreateTime int64  `json:"create_time"`
	Cover      string `json:"cover"`
}

// ReportArticle is an Article tagged with its owning account and, when the AI
// filter ran, a short free-text reason why it matched the user's interests.
type ReportArticle struct {
	Article
	AccountName string `json:"account_name"`
	AccountID   int64  `json:"account_id"`
	Reason      string `json:"reason,omitempty"`
}
