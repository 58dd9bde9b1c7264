package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. It never
// prompts; every operation of a class is selected.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// PickOperations returns every operation name without prompting.
func (s *SimpleUI) PickOperations(ctx context.Context, model m.ClassModel) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(model.Operations))
	for _, op := range model.Operations {
		names = append(names, op.Name)
	}

	return names, nil
}

// DisplayClassSummaries prints one table row per discovered class.
func (s *SimpleUI) DisplayClassSummaries(ctx context.Context, summaries []ClassSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]ClassSummary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Source < sorted[j].Source
	})

	totalOps := 0

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Package", "Deps", "Methods"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, summary := range sorted {
		table.Append([]string{
			summary.ClassName,
			summary.PackageName,
			fmt.Sprintf("%d", summary.Dependencies),
			fmt.Sprintf("%d", summary.Operations),
		})

		totalOps += summary.Operations
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Classes %d", len(sorted)),
		"",
		"",
		fmt.Sprintf("%d", totalOps),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRecords prints the persisted generation history.
func (s *SimpleUI) DisplayRecords(ctx context.Context, records []m.GenerationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(records) == 0 {
		s.printf("No generation records found.\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Class", "Target", "Methods", "Merged", "When"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, record := range records {
		merged := "no"
		if record.Merged {
			merged = "yes"
		}

		table.Append([]string{
			record.ClassName,
			string(record.TargetPath),
			fmt.Sprintf("%d", record.Methods),
			merged,
			record.GeneratedAt.Format("2006-01-02 15:04:05"),
		})
	}

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// Notify prints an informational message.
func (s *SimpleUI) Notify(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf(format+"\n", args...)
}

// Warn prints a warning message.
func (s *SimpleUI) Warn(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("warning: "+format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
