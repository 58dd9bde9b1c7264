package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"testsmith.dev/pkg/testsmith/internal/adapter"
	"testsmith.dev/pkg/testsmith/internal/controller"
	m "testsmith.dev/pkg/testsmith/internal/model"
)

// GenerateArgs contains the arguments for the generate command.
type GenerateArgs struct {
	Paths    []m.Path
	Exclude  []string
	Methods  []string // explicit method filter; skips the picker
	All      bool     // select every operation; skips the picker
	DryRun   bool
	TestRoot m.Path
	Reports  m.Path
	Config   m.GeneratorConfig
}

// ListArgs contains the arguments for the list command.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
}

// ViewArgs contains the arguments for the view command.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives the analyze -> select -> synthesize -> merge -> write
// pipeline. The pure core never touches the filesystem; all I/O goes
// through the embedded adapters.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.JavaFileAdapter
	adapter.SourceFSAdapter
	adapter.ReportStore
	StructuralAnalyzer
	TestCodeSynthesizer
	IncrementalMerger

	ui controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	javaAdapter adapter.JavaFileAdapter,
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	analyzer StructuralAnalyzer,
	synthesizer TestCodeSynthesizer,
	merger IncrementalMerger,
) Workflow {
	return &workflow{
		JavaFileAdapter:     javaAdapter,
		SourceFSAdapter:     fsAdapter,
		ReportStore:         reportStore,
		StructuralAnalyzer:  analyzer,
		TestCodeSynthesizer: synthesizer,
		IncrementalMerger:   merger,
		ui:                  ui,
	}
}

// Generate runs the full pipeline for every concrete class found under
// the provided paths.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	files, err := w.CollectJavaFiles(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("collect sources: %w", err)
	}

	if len(files) == 0 {
		w.ui.Warn(ctx, "no Java sources found")
		return nil
	}

	slog.Debug("starting generation", "files", len(files))

	var records []m.GenerationRecord

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		fileRecords, err := w.generateForFile(ctx, file, args)
		if err != nil {
			return err
		}

		records = append(records, fileRecords...)
	}

	if args.DryRun || len(records) == 0 {
		return nil
	}

	if err := w.AppendRecords(args.Reports, records); err != nil {
		return fmt.Errorf("save generation records: %w", err)
	}

	return nil
}

func (w *workflow) generateForFile(ctx context.Context, file m.Path, args GenerateArgs) ([]m.GenerationRecord, error) {
	src, err := w.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	decls, err := w.Parse(ctx, file, src)
	if err != nil {
		return nil, err
	}

	var records []m.GenerationRecord

	for _, decl := range decls {
		record, generated, err := w.generateForClass(ctx, decl, args)
		if err != nil {
			return nil, err
		}

		if generated {
			records = append(records, record)
		}
	}

	return records, nil
}

func (w *workflow) generateForClass(ctx context.Context, decl m.ClassDeclaration, args GenerateArgs) (m.GenerationRecord, bool, error) {
	model, err := w.Analyze(decl)
	if err != nil {
		if errors.Is(err, ErrNotConcreteClass) {
			slog.Debug("skipping declaration", "name", decl.Name, "kind", decl.Kind)
			return m.GenerationRecord{}, false, nil
		}

		return m.GenerationRecord{}, false, err
	}

	if len(model.Operations) == 0 {
		w.ui.Warn(ctx, "no public methods found in %s", model.ClassName)
		return m.GenerationRecord{}, false, nil
	}

	names, err := w.selectOperations(ctx, model, args)
	if err != nil {
		if errors.Is(err, controller.ErrSelectionCancelled) {
			w.ui.Notify(ctx, "%s skipped", model.ClassName)
			return m.GenerationRecord{}, false, nil
		}

		return m.GenerationRecord{}, false, err
	}

	if len(names) == 0 {
		w.ui.Warn(ctx, "no methods selected for %s", model.ClassName)
		return m.GenerationRecord{}, false, nil
	}

	selected := model.Select(names)
	text := w.Synthesize(selected, args.Config)

	target, err := w.ResolveTestPath(decl.SourcePath, args.TestRoot, model.PackageName, model.ClassName)
	if err != nil {
		return m.GenerationRecord{}, false, err
	}

	if args.DryRun {
		w.ui.Notify(ctx, "--- %s\n%s", target, text)
		return m.GenerationRecord{}, false, nil
	}

	output := text
	merged := false

	if w.FileExists(target) {
		existing, err := w.ReadFile(target)
		if err != nil {
			return m.GenerationRecord{}, false, fmt.Errorf("read existing %s: %w", target, err)
		}

		output = w.Merge(string(existing), text)
		merged = true

		if output == string(existing) {
			w.ui.Notify(ctx, "%sTest.java already up to date", model.ClassName)
			return m.GenerationRecord{}, false, nil
		}
	}

	if err := w.WriteFile(target, []byte(output), 0o644); err != nil {
		return m.GenerationRecord{}, false, fmt.Errorf("write %s: %w", target, err)
	}

	methods := countTestMethods(selected, args.Config)
	w.ui.Notify(ctx, "%sTest.java generated with %d test method(s)", model.ClassName, methods)
	slog.Info("test class written", "class", model.ClassName, "target", target, "merged", merged)

	return m.GenerationRecord{
		ClassName:   model.ClassName,
		PackageName: model.PackageName,
		TargetPath:  target,
		Methods:     methods,
		Merged:      merged,
		GeneratedAt: time.Now().UTC(),
	}, true, nil
}

func (w *workflow) selectOperations(ctx context.Context, model m.ClassModel, args GenerateArgs) ([]string, error) {
	if len(args.Methods) > 0 {
		return args.Methods, nil
	}

	if args.All {
		names := make([]string, 0, len(model.Operations))
		for _, op := range model.Operations {
			names = append(names, op.Name)
		}

		return names, nil
	}

	return w.ui.PickOperations(ctx, model)
}

func countTestMethods(model m.ClassModel, cfg m.GeneratorConfig) int {
	count := 0

	for _, op := range model.Operations {
		count++

		if cfg.FailureTests {
			count += len(op.FailureModes)
		}
	}

	return count
}

// List scans the provided paths in parallel and renders a summary table.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	files, err := w.CollectJavaFiles(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("collect sources: %w", err)
	}

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var (
		mu        sync.Mutex
		summaries []controller.ClassSummary
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for _, file := range files {
		file := file
		group.Go(func() error {
			fileSummaries, err := w.summarizeFile(groupCtx, file)
			if err != nil {
				return err
			}

			mu.Lock()
			summaries = append(summaries, fileSummaries...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayClassSummaries(ctx, summaries)
}

func (w *workflow) summarizeFile(ctx context.Context, file m.Path) ([]controller.ClassSummary, error) {
	src, err := w.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	decls, err := w.Parse(ctx, file, src)
	if err != nil {
		return nil, err
	}

	var summaries []controller.ClassSummary

	for _, decl := range decls {
		model, err := w.Analyze(decl)
		if err != nil {
			if errors.Is(err, ErrNotConcreteClass) {
				continue
			}

			return nil, err
		}

		summaries = append(summaries, controller.ClassSummary{
			Source:       file,
			ClassName:    model.ClassName,
			PackageName:  model.PackageName,
			Dependencies: len(model.Dependencies),
			Operations:   len(model.Operations),
		})
	}

	return summaries, nil
}

// View renders the persisted generation records.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	records, err := w.LoadRecords(args.Reports)
	if err != nil {
		return fmt.Errorf("load generation records: %w", err)
	}

	return w.ui.DisplayRecords(ctx, records)
}
