package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviu-server/models"
)

func strPtr(s string) *string { return &s }

func sampleReviews() []models.Review {
	return []models.Review{
		{ID: "r1", Rating: 5.0, Status: models.StatusPublished, WaiterID: strPtr("WTR-2001")},
		{ID: "r2", Rating: 2.5, Status: models.StatusPendingResolution, WaiterID: strPtr("WTR-2001")},
		{ID: "r3", Rating: 3.0, Status: models.StatusResolved},
		{ID: "r4", Rating: 4.5, Status: models.StatusPublished, WaiterID: strPtr("WTR-2002")},
	}
}

func TestParseReviewFilter(t *testing.T) {
	tests := []struct {
		value string
		want  ReviewFilter
	}{
		{"all", FilterAll},
		{"pending", FilterPending},
		{"resolved", FilterResolved},
		{"", FilterAll},
		{"garbage", FilterAll},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseReviewFilter(tt.value), "value %q", tt.value)
	}
}

func TestFilterReviews(t *testing.T) {
	reviews := sampleReviews()

	t.Run("all returns everything", func(t *testing.T) {
		got := FilterReviews(reviews, FilterAll)
		assert.Len(t, got, 4)
	})

	t.Run("pending", func(t *testing.T) {
		got := FilterReviews(reviews, FilterPending)
		require.Len(t, got, 1)
		assert.Equal(t, "r2", got[0].ID)
	})

	t.Run("resolved includes published", func(t *testing.T) {
		got := FilterReviews(reviews, FilterResolved)
		require.Len(t, got, 3)
		// input order preserved
		assert.Equal(t, "r1", got[0].ID)
		assert.Equal(t, "r3", got[1].ID)
		assert.Equal(t, "r4", got[2].ID)
	})

	t.Run("input untouched", func(t *testing.T) {
		FilterReviews(reviews, FilterPending)
		assert.Len(t, reviews, 4)
		assert.Equal(t, "r1", reviews[0].ID)
	})
}

func TestComputeTenantStats(t *testing.T) {
	waiters := []models.Waiter{
		{ID: "WTR-2001", IsActive: true},
		{ID: "WTR-2002", IsActive: false},
		{ID: "WTR-2003", IsActive: true},
	}

	t.Run("aggregates", func(t *testing.T) {
		stats := ComputeTenantStats(waiters, sampleReviews())
		assert.Equal(t, 4, stats.TotalReviews)
		assert.InDelta(t, 3.75, stats.AverageRating, 0.0001)
		assert.Equal(t, 1, stats.PendingCount)
		assert.Equal(t, 2, stats.ActiveWaiters)
	})

	t.Run("empty collections", func(t *testing.T) {
		stats := ComputeTenantStats(nil, nil)
		assert.Equal(t, 0, stats.TotalReviews)
		assert.Equal(t, 0.0, stats.AverageRating)
		assert.Equal(t, 0, stats.PendingCount)
		assert.Equal(t, 0, stats.ActiveWaiters)
	})
}

func TestComputeWaiterStats(t *testing.T) {
	waiters := []models.Waiter{
		{ID: "WTR-2001", Name: "CARLOS", IsActive: true},
		{ID: "WTR-2002", Name: "MARIA", IsActive: true},
		{ID: "WTR-2003", Name: "JOÃO", IsActive: false},
	}

	stats := ComputeWaiterStats(waiters, sampleReviews())
	require.Len(t, stats, 3)

	t.Run("average over attributed reviews", func(t *testing.T) {
		assert.Equal(t, 2, stats[0].ReviewCount)
		assert.Equal(t, "3.8", stats[0].Average)
		assert.Len(t, stats[0].Reviews, 2)
	})

	t.Run("single review", func(t *testing.T) {
		assert.Equal(t, 1, stats[1].ReviewCount)
		assert.Equal(t, "4.5", stats[1].Average)
	})

	t.Run("no reviews yields N/A", func(t *testing.T) {
		assert.Equal(t, 0, stats[2].ReviewCount)
		assert.Equal(t, "N/A", stats[2].Average)
		assert.Empty(t, stats[2].Reviews)
	})
}
