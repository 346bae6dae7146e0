package models

import (
	"fmt"
	"math"
	"time"
)

// ReviewStatus is the lifecycle status of a review
type ReviewStatus string

const (
	StatusPublished         ReviewStatus = "published"
	StatusPendingResolution ReviewStatus = "pending_resolution"
	StatusResolved          ReviewStatus = "resolved"
)

// PublishThreshold is the minimum breakdown mean for the positive flow.
// The comparison uses the unrounded mean; a mean of exactly 4.0 publishes.
const PublishThreshold = 4.0

// AgeRanges are the selectable respondent age brackets
var AgeRanges = []string{"-18", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// ComplaintCategories are the selectable reasons in the negative flow
var ComplaintCategories = []string{"qualidade", "demora", "atendimento", "ambiente", "outros"}

// IsValidComplaintCategory reports whether id names a known complaint category
func IsValidComplaintCategory(id string) bool {
	for _, c := range ComplaintCategories {
		if c == id {
			return true
		}
	}
	return false
}

// IsValidAgeRange reports whether r names a known age bracket
func IsValidAgeRange(r string) bool {
	for _, a := range AgeRanges {
		if a == r {
			return true
		}
	}
	return false
}

// UserInfo identifies the respondent; embedded in Review, not standalone
type UserInfo struct {
	Name     string `json:"name" gorm:"column:user_name;size:255"`
	Email    string `json:"email" gorm:"column:user_email;size:255"`
	AgeRange string `json:"age_range" gorm:"column:user_age_range;size:10"`
}

// Breakdown is the four-dimension rating vector, each value 1-5
type Breakdown struct {
	Food     int `json:"food" gorm:"column:food"`
	Service  int `json:"service" gorm:"column:service"`
	Ambiance int `json:"ambiance" gorm:"column:ambiance"`
	Music    int `json:"music" gorm:"column:music"`
}

// Mean returns the unrounded arithmetic mean of the four dimensions
func (b Breakdown) Mean() float64 {
	return float64(b.Food+b.Service+b.Ambiance+b.Music) / 4.0
}

// Complete reports whether every dimension has been rated
func (b Breakdown) Complete() bool {
	return b.Food > 0 && b.Service > 0 && b.Ambiance > 0 && b.Music > 0
}

// BreakdownComments holds the optional free-text note per dimension
type BreakdownComments struct {
	Food     string `json:"food" gorm:"column:food_comment;type:text"`
	Service  string `json:"service" gorm:"column:service_comment;type:text"`
	Ambiance string `json:"ambiance" gorm:"column:ambiance_comment;type:text"`
	Music    string `json:"music" gorm:"column:music_comment;type:text"`
}

// Review represents one completed wizard pass
type Review struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(40)"`
	TenantID string  `json:"tenant_id" gorm:"type:varchar(20);index;not null"`
	WaiterID *string `json:"waiter_id,omitempty" gorm:"type:varchar(20);index"`

	UserInfo          UserInfo          `json:"user_info" gorm:"embedded"`
	Breakdown         Breakdown         `json:"breakdown" gorm:"embedded"`
	BreakdownComments BreakdownComments `json:"breakdown_comments" gorm:"embedded"`

	// Rating is the rounded breakdown mean, fixed at submission time and
	// never recomputed.
	Rating      float64      `json:"rating" gorm:"type:decimal(3,1);not null"`
	Comment     string       `json:"comment" gorm:"type:text"`
	ContactInfo string       `json:"contact_info" gorm:"size:30"`
	Category    string       `json:"category,omitempty" gorm:"size:30"`
	Status      ReviewStatus `json:"status" gorm:"type:varchar(30);not null;check:status IN ('published','pending_resolution','resolved')"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime;index"`
}

// OverallRating rounds a breakdown mean to one decimal, half away from zero
func OverallRating(b Breakdown) float64 {
	return math.Round(b.Mean()*10) / 10
}

// FormatRating renders a rating value the way dashboards display it
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}
