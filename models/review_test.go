package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakdownMean(t *testing.T) {
	tests := []struct {
		name string
		b    Breakdown
		want float64
	}{
		{"all fives", Breakdown{5, 5, 5, 5}, 5.0},
		{"mixed", Breakdown{5, 3, 4, 4}, 4.0},
		{"just below threshold", Breakdown{4, 4, 4, 3}, 3.75},
		{"all ones", Breakdown{1, 1, 1, 1}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.Mean())
		})
	}
}

func TestOverallRating(t *testing.T) {
	// the stored rating is the mean rounded to one decimal, while the
	// publish branch compares the unrounded mean
	tests := []struct {
		b    Breakdown
		want float64
	}{
		{Breakdown{4, 4, 4, 3}, 3.8}, // mean 3.75 rounds up but still went negative
		{Breakdown{2, 3, 2, 1}, 2.0},
		{Breakdown{5, 4, 4, 4}, 4.3}, // mean 4.25
		{Breakdown{5, 5, 5, 5}, 5.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, OverallRating(tt.b), 0.0001, "breakdown %+v", tt.b)
	}
}

func TestBreakdownComplete(t *testing.T) {
	assert.True(t, Breakdown{1, 2, 3, 4}.Complete())
	assert.False(t, Breakdown{1, 2, 3, 0}.Complete())
	assert.False(t, Breakdown{}.Complete())
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.0", FormatRating(4))
	assert.Equal(t, "3.8", FormatRating(3.75))
	assert.Equal(t, "0.0", FormatRating(0))
}

func TestValidators(t *testing.T) {
	t.Run("complaint categories", func(t *testing.T) {
		for _, c := range ComplaintCategories {
			assert.True(t, IsValidComplaintCategory(c))
		}
		assert.False(t, IsValidComplaintCategory("preço"))
		assert.False(t, IsValidComplaintCategory(""))
	})

	t.Run("age ranges", func(t *testing.T) {
		for _, r := range AgeRanges {
			assert.True(t, IsValidAgeRange(r))
		}
		assert.False(t, IsValidAgeRange("18"))
		assert.False(t, IsValidAgeRange(""))
	})
}

func TestTenantPublicStripsCredentials(t *testing.T) {
	tenant := Tenant{
		ID:               "TEN-1001",
		Name:             "BISTRÔ CENTRAL",
		ManagerPinHash:   "$2a$10$secret",
		GoogleReviewLink: "https://g.page/bistro/review",
		IsActive:         true,
	}
	public := tenant.Public()
	assert.Equal(t, tenant.ID, public.ID)
	assert.Equal(t, tenant.Name, public.Name)
	assert.Equal(t, tenant.GoogleReviewLink, public.GoogleReviewLink)
	assert.True(t, public.IsActive)
}
