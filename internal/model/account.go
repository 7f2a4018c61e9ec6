package model

import "time"

// Account is a tracked WeChat official account. The fakeid is the upstream's
// stable identifier and is immutable once the row exists.
type Account struct {
	ID      int64
	Name    string
	FakeID  string
	AddedAt time.Time
}
