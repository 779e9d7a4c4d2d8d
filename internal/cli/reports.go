package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/havenlocal/haven/internal/common"
	"github.com/havenlocal/haven/internal/models"
)

// Reports lists the current user's reports.
func (a *App) Reports(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}

	list, err := a.catalog.List(ctx, a.session.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No reports yet. Use 'addreport' to file one.")
		return nil
	}

	for _, r := range list {
		printlnFn(fmt.Sprintf("%s  [%s]  %s: %s", r.ID, r.Status, r.Category, r.Description))
	}
	return nil
}

// askCategory shows the fixed category list and reads a choice, either by
// number or by full name. Empty input returns "" (keep / cancel).
func (a *App) askCategory() (models.Category, error) {
	categories := models.Categories()
	for i, c := range categories {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, c))
	}

	answer, err := getSimpleText(a.reader, "Report type (number or name, empty to skip)", os.Stdout)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(categories) {
		return categories[n-1], nil
	}
	return models.Category(answer), nil
}

func printValidation(err error) bool {
	var vErr *common.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	for _, msg := range vErr.Fields {
		printlnFn("  - " + msg)
	}
	return true
}

// AddReport files a new report. Validation failures are printed inline and
// leave the catalog untouched.
func (a *App) AddReport(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}

	category, err := a.askCategory()
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Describe what happened (at least 10 characters)", os.Stdout)
	if err != nil {
		return err
	}

	report, err := a.catalog.Create(ctx, a.session.ID, category, description)
	if err != nil {
		if printValidation(err) {
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Report %s filed with status %q.", report.ID, report.Status))
	return nil
}

// EditReport updates the type and/or description of an existing report.
// Empty answers keep the current values.
func (a *App) EditReport(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Report id", os.Stdout)
	if err != nil || id == "" {
		return err
	}

	category, err := a.askCategory()
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.ReportPatch
	if category != "" {
		if !category.Known() {
			printlnFn(fmt.Sprintf("Unknown report type %q.", category))
			return nil
		}
		patch.Category = &category
	}
	if description != "" {
		patch.Description = &description
	}
	if patch.Category == nil && patch.Description == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	if err := a.catalog.Update(ctx, a.session.ID, id, patch); err != nil {
		return err
	}
	printlnFn("Report updated.")
	return nil
}

// DeleteReport removes a report by id.
func (a *App) DeleteReport(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Report id to delete", os.Stdout)
	if err != nil || id == "" {
		return err
	}

	if err := a.catalog.Delete(ctx, a.session.ID, id); err != nil {
		return err
	}
	printlnFn("Report deleted.")
	return nil
}

// SetReportStatus changes a report's status. The enumeration is checked
// here, at the presentation layer; the catalog itself stores whatever it is
// given.
func (a *App) SetReportStatus(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Report id", os.Stdout)
	if err != nil || id == "" {
		return err
	}

	answer, err := getSimpleText(a.reader, "New status (pending, in-progress, resolved)", os.Stdout)
	if err != nil {
		return err
	}

	status := models.Status(answer)
	if !status.Known() {
		printlnFn(fmt.Sprintf("Unknown status %q.", answer))
		return nil
	}

	if err := a.catalog.SetStatus(ctx, a.session.ID, id, status); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Status set to %q.", status))
	return nil
}
