package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalytics(t *testing.T) (*Analytics, *Store) {
	t.Helper()
	s := newTestStore(t)
	a, err := OpenAnalytics(context.Background(), s)
	require.NoError(t, err)
	return a, s
}

func TestAnalyticsTrackUsage(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAnalytics(t)

	_, ok := a.Get("p1")
	assert.False(t, ok)

	require.NoError(t, a.TrackUsage(ctx, "p1"))
	require.NoError(t, a.TrackUsage(ctx, "p1"))

	r, ok := a.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 2, r.UsageCount)
	assert.NotEmpty(t, r.LastUsed)
	assert.Zero(t, r.TotalBets)
}

func TestAnalyticsRecordOutcome(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAnalytics(t)

	require.NoError(t, a.RecordOutcome(ctx, "p1", true, 100, 180))
	require.NoError(t, a.RecordOutcome(ctx, "p1", false, 50, 0))

	r, ok := a.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 2, r.TotalBets)
	assert.Equal(t, 1, r.WinningBets)
	assert.InDelta(t, 50.0, r.SuccessRate, 1e-9)
	assert.InDelta(t, 30.0, r.ROI, 1e-9) // (180-100) - 50
}

func TestAnalyticsPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	a, s := newTestAnalytics(t)

	require.NoError(t, a.TrackUsage(ctx, "p1"))
	require.NoError(t, a.RecordOutcome(ctx, "p2", true, 10, 25))

	again, err := OpenAnalytics(ctx, s)
	require.NoError(t, err)

	r1, ok := again.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 1, r1.UsageCount)

	r2, ok := again.Get("p2")
	require.True(t, ok)
	assert.InDelta(t, 15.0, r2.ROI, 1e-9)
}
