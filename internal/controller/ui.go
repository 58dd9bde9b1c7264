// Package controller provides the user-facing surfaces of the testsmith
// CLI: result tables, notices, and the interactive method picker.
package controller

import (
	"context"
	"errors"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// ErrSelectionCancelled is returned when the user dismisses the method
// picker without confirming a selection.
var ErrSelectionCancelled = errors.New("method selection cancelled")

// ClassSummary is one row of the list output.
type ClassSummary struct {
	Source       m.Path
	ClassName    string
	PackageName  string
	Dependencies int
	Operations   int
}

// UI defines the interface for interacting with the person running the
// tool. Implementations differ in how much interactivity they offer.
type UI interface {
	// PickOperations narrows the operation list of a class before
	// synthesis. Non-interactive implementations return every operation.
	PickOperations(ctx context.Context, model m.ClassModel) ([]string, error)

	// DisplayClassSummaries renders the list command's table.
	DisplayClassSummaries(ctx context.Context, summaries []ClassSummary) error

	// DisplayRecords renders previously persisted generation records.
	DisplayRecords(ctx context.Context, records []m.GenerationRecord) error

	// Notify prints an informational message.
	Notify(ctx context.Context, format string, args ...any)

	// Warn prints a warning message.
	Warn(ctx context.Context, format string, args ...any)
}
