// Package reports implements the per-identity incident-report catalog.
// Each identity's reports live under their own key; update and delete on an
// unknown report id are deliberately silent no-ops, matching the forgiving
// behavior the dashboard expects.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/havenlocal/haven/internal/common"
	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/models"
)

// MinDescriptionLen is the minimum trimmed description length, in runes.
const MinDescriptionLen = 10

func reportsKey(ownerID string) string {
	return fmt.Sprintf("reports:%s", ownerID)
}

// Catalog is the report service.
type Catalog struct {
	store kv.Store
}

// NewCatalog returns a Catalog persisting through store.
func NewCatalog(store kv.Store) *Catalog {
	return &Catalog{store: store}
}

// List returns ownerID's reports in insertion order.
func (c *Catalog) List(ctx context.Context, ownerID string) ([]models.Report, error) {
	var list []models.Report
	if _, err := kv.GetJSON(ctx, c.store, reportsKey(ownerID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create validates the fields, stores a new pending report for ownerID, and
// returns it. Validation failures come back as *common.ValidationError with
// one message per offending field.
func (c *Catalog) Create(ctx context.Context, ownerID string, category models.Category, description string) (models.Report, error) {
	fields := make(map[string]string)
	if category == "" {
		fields["category"] = "please select a report type"
	} else if !category.Known() {
		fields["category"] = fmt.Sprintf("unknown report type %q", category)
	}
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		fields["description"] = "description is required"
	} else if utf8.RuneCountInString(trimmed) < MinDescriptionLen {
		fields["description"] = fmt.Sprintf("description must be at least %d characters", MinDescriptionLen)
	}
	if len(fields) > 0 {
		return models.Report{}, &common.ValidationError{Fields: fields}
	}

	report := models.Report{
		ID:          models.NewReportID(),
		OwnerID:     ownerID,
		Category:    category,
		Description: description,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}

	list, err := c.List(ctx, ownerID)
	if err != nil {
		return models.Report{}, err
	}
	list = append(list, report)
	if err := kv.SetJSON(ctx, c.store, reportsKey(ownerID), list); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// Update merges patch into ownerID's report with the given id. An unknown id
// is a silent no-op. Note that the patch is applied as given: the store layer
// does not re-validate, so an out-of-enumeration status sticks.
func (c *Catalog) Update(ctx context.Context, ownerID, reportID string, patch models.ReportPatch) error {
	list, err := c.List(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == reportID {
			patch.Apply(&list[i])
			return kv.SetJSON(ctx, c.store, reportsKey(ownerID), list)
		}
	}
	return nil
}

// Delete removes ownerID's report with the given id. An unknown id is a
// silent no-op.
func (c *Catalog) Delete(ctx context.Context, ownerID, reportID string) error {
	list, err := c.List(ctx, ownerID)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, r := range list {
		if r.ID != reportID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return kv.SetJSON(ctx, c.store, reportsKey(ownerID), kept)
}

// SetStatus is the status-only form of Update.
func (c *Catalog) SetStatus(ctx context.Context, ownerID, reportID string, status models.Status) error {
	return c.Update(ctx, ownerID, reportID, models.ReportPatch{Status: &status})
}
