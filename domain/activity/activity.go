// Package activity describes the entries recorded each time a page does work.
package activity

import (
	"strings"
	"time"

	"showcase/domain/core"
	"showcase/domain/page"
)

// MaxSummaryLength bounds the stored summary, in runes
const MaxSummaryLength = 200

// Entry is one recorded page action
type Entry struct {
	ID        core.ID   `json:"id"`
	Page      page.Page `json:"page"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry stamps a new entry with a fresh id and the current UTC time
func NewEntry(p page.Page, summary string) Entry {
	return Entry{
		ID:        core.NewID(),
		Page:      p,
		Summary:   truncate(strings.TrimSpace(summary), MaxSummaryLength),
		CreatedAt: time.Now().UTC(),
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
