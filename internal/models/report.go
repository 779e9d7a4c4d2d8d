package models

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Category classifies an incident report.
type Category string

const (
	CategoryPhysical  Category = "Physical Abuse"
	CategoryEmotional Category = "Emotional Abuse"
	CategoryFinancial Category = "Financial Abuse"
	CategorySexual    Category = "Sexual Abuse"
	CategoryOther     Category = "Other"
)

// Categories lists every known report category, in display order.
func Categories() []Category {
	return []Category{
		CategoryPhysical,
		CategoryEmotional,
		CategoryFinancial,
		CategorySexual,
		CategoryOther,
	}
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	switch c {
	case CategoryPhysical, CategoryEmotional, CategoryFinancial, CategorySexual, CategoryOther:
		return true
	}
	return false
}

// Status is a report's lifecycle state. The owner may set any of the three
// values in any order; the lifecycle is not monotonic.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// Known reports whether s is one of the fixed statuses. The storage layer
// does not enforce this; only the presentation layer checks it.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Report is one incident report owned by a single identity.
type Report struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportPatch is a partial update for a Report. Nil fields are left alone.
// Using named optional fields keeps the merge contract statically checkable,
// unlike an open-ended map.
type ReportPatch struct {
	Category    *Category
	Description *string
	Status      *Status
}

// Apply merges the patch into r.
func (p ReportPatch) Apply(r *Report) {
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// NewReportID returns a creation-time-derived report id.
func NewReportID() string {
	return ulid.Make().String()
}
