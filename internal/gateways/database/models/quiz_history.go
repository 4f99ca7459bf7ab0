package models

import (
	"slices"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
)

// QuizHistory keeps the question ids a player has already seen as a comma separated list.
type QuizHistory struct {
	bun.BaseModel `bun:"table:quiz_histories,alias:qh"`

	UserID   string `bun:"user_id,pk"`
	AskedIDs string `bun:"asked_ids,notnull"`
}

// IDs parses AskedIDs, skipping malformed entries.
func (h *QuizHistory) IDs() []int64 {
	if h == nil || h.AskedIDs == "" {
		return nil
	}
	parts := strings.Split(h.AskedIDs, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// SetIDs stores ids, dropping duplicates while keeping first-seen order.
func (h *QuizHistory) SetIDs(ids []int64) {
	seen := make([]int64, 0, len(ids))
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if slices.Contains(seen, id) {
			continue
		}
		seen = append(seen, id)
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	h.AskedIDs = strings.Join(parts, ",")
}
