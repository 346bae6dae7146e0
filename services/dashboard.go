package services

import (
	"reviu-server/models"
)

// ReviewFilter is the tri-state dashboard view filter
type ReviewFilter string

const (
	FilterAll      ReviewFilter = "all"
	FilterPending  ReviewFilter = "pending"
	FilterResolved ReviewFilter = "resolved"
)

// ParseReviewFilter maps a query value to a filter, defaulting to all
func ParseReviewFilter(value string) ReviewFilter {
	switch ReviewFilter(value) {
	case FilterPending:
		return FilterPending
	case FilterResolved:
		return FilterResolved
	default:
		return FilterAll
	}
}

// TenantStats is the tenant-wide dashboard header
type TenantStats struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	PendingCount  int     `json:"pending_count"`
	ActiveWaiters int     `json:"active_waiters"`
}

// FilterReviews restricts reviews by status. "resolved" covers both resolved
// and published records. The input order is preserved and the underlying
// slice is never mutated.
func FilterReviews(reviews []models.Review, filter ReviewFilter) []models.Review {
	if filter == FilterAll {
		return reviews
	}

	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		switch filter {
		case FilterPending:
			if r.Status == models.StatusPendingResolution {
				out = append(out, r)
			}
		case FilterResolved:
			if r.Status == models.StatusResolved || r.Status == models.StatusPublished {
				out = append(out, r)
			}
		}
	}
	return out
}

// ComputeTenantStats aggregates the tenant-wide figures. Pure function of the
// current collections; recomputed on every call, never cached or persisted.
func ComputeTenantStats(waiters []models.Waiter, reviews []models.Review) TenantStats {
	stats := TenantStats{TotalReviews: len(reviews)}

	total := 0.0
	for _, r := range reviews {
		total += r.Rating
		if r.Status == models.StatusPendingResolution {
			stats.PendingCount++
		}
	}
	if len(reviews) > 0 {
		stats.AverageRating = total / float64(len(reviews))
	}

	for _, w := range waiters {
		if w.IsActive {
			stats.ActiveWaiters++
		}
	}

	return stats
}

// ComputeWaiterStats builds the per-waiter drill-down: review count, the
// one-decimal average ("N/A" when the waiter has none), and the matching
// review subset.
func ComputeWaiterStats(waiters []models.Waiter, reviews []models.Review) []models.WaiterStats {
	stats := make([]models.WaiterStats, 0, len(waiters))
	for _, w := range waiters {
		subset := make([]models.Review, 0)
		total := 0.0
		for _, r := range reviews {
			if r.WaiterID != nil && *r.WaiterID == w.ID {
				subset = append(subset, r)
				total += r.Rating
			}
		}

		avg := "N/A"
		if len(subset) > 0 {
			avg = models.FormatRating(total / float64(len(subset)))
		}

		stats = append(stats, models.WaiterStats{
			Waiter:      w,
			ReviewCount: len(subset),
			Average:     avg,
			Reviews:     subset,
		})
	}
	return stats
}
