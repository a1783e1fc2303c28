package store

import (
	"context"
	"time"
)

// AnalyticsRecord tracks usage and betting outcomes for one prompt, keyed by
// prompt id. It is a join against the library, not an ownership relation:
// deleting a prompt leaves its record behind.
type AnalyticsRecord struct {
	PromptID    string  `json:"promptId"`
	UsageCount  int     `json:"usageCount"`
	LastUsed    string  `json:"lastUsed,omitempty"`
	SuccessRate float64 `json:"successRate"`
	TotalBets   int     `json:"totalBets"`
	WinningBets int     `json:"winningBets"`
	ROI         float64 `json:"roi"`
}

// Analytics is the persisted analytics sub-store. It is the single source of
// truth for usage and outcome figures; prompt-level copies are display-only.
type Analytics struct {
	store   *Store
	records map[string]AnalyticsRecord
}

// OpenAnalytics loads the analytics document.
func OpenAnalytics(ctx context.Context, s *Store) (*Analytics, error) {
	a := &Analytics{store: s, records: make(map[string]AnalyticsRecord)}
	var list []AnalyticsRecord
	if _, err := s.Get(ctx, KeyAnalytics, &list); err != nil {
		return nil, err
	}
	for _, r := range list {
		a.records[r.PromptID] = r
	}
	return a, nil
}

// Get returns the record for a prompt; ok is false when no usage or outcome
// has been recorded yet.
func (a *Analytics) Get(promptID string) (AnalyticsRecord, bool) {
	r, ok := a.records[promptID]
	return r, ok
}

// TrackUsage increments the usage counter and refreshes lastUsed, creating a
// zeroed record on first use.
func (a *Analytics) TrackUsage(ctx context.Context, promptID string) error {
	r := a.records[promptID]
	r.PromptID = promptID
	r.UsageCount++
	r.LastUsed = time.Now().UTC().Format(time.RFC3339)
	a.records[promptID] = r
	return a.persist(ctx)
}

// RecordOutcome records one settled bet. ROI accumulates the net profit:
// winAmount-betAmount on a win, -betAmount on a loss.
func (a *Analytics) RecordOutcome(ctx context.Context, promptID string, won bool, betAmount, winAmount float64) error {
	r := a.records[promptID]
	r.PromptID = promptID
	r.TotalBets++
	if won {
		r.WinningBets++
		r.ROI += winAmount - betAmount
	} else {
		r.ROI -= betAmount
	}
	r.SuccessRate = float64(r.WinningBets) / float64(r.TotalBets) * 100
	a.records[promptID] = r
	return a.persist(ctx)
}

func (a *Analytics) persist(ctx context.Context) error {
	list := make([]AnalyticsRecord, 0, len(a.records))
	for _, r := range a.records {
		list = append(list, r)
	}
	return a.store.Set(ctx, KeyAnalytics, list)
}
