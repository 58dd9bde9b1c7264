package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	adaptermocks "testsmith.dev/pkg/testsmith/internal/adapter/mocks"
	"testsmith.dev/pkg/testsmith/internal/controller"
	controllermocks "testsmith.dev/pkg/testsmith/internal/controller/mocks"
	domain "testsmith.dev/pkg/testsmith/internal/domain"
	m "testsmith.dev/pkg/testsmith/internal/model"
)

const autowired = "org.springframework.beans.factory.annotation.Autowired"

func widgetDeclaration(source m.Path) m.ClassDeclaration {
	return m.ClassDeclaration{
		PackageName: "org.sample",
		Name:        "Widget",
		Kind:        m.KindClass,
		Fields: []m.FieldDeclaration{
			{TypeName: "WidgetRepository", Name: "widgetRepository", Annotations: []string{autowired}},
		},
		Methods: []m.MethodDeclaration{
			{Name: "get", ReturnType: "Widget", IsPublic: true, Parameters: []m.ParameterDeclaration{{TypeName: "Long", Name: "id"}}},
		},
		SourcePath: source,
	}
}

func newTestWorkflow(
	javaAdapter *adaptermocks.MockJavaFileAdapter,
	fsAdapter *adaptermocks.MockSourceFSAdapter,
	reportStore *adaptermocks.MockReportStore,
	ui *controllermocks.MockUI,
) domain.Workflow {
	return domain.NewWorkflow(
		javaAdapter,
		fsAdapter,
		reportStore,
		ui,
		domain.NewStructuralAnalyzer(),
		domain.NewTestCodeSynthesizer(),
		domain.NewIncrementalMerger(),
	)
}

func TestWorkflow_Generate_WritesNewTestFile(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("src/main/java/org/sample/Widget.java")
	target := m.Path("src/test/java/org/sample/WidgetTest.java")
	src := []byte("class Widget {}")

	mockFSAdapter.On("CollectJavaFiles", []m.Path{source}, []string(nil)).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockFSAdapter.On("ResolveTestPath", source, m.Path(""), "org.sample", "Widget").
		Return(target, nil).Once()
	mockFSAdapter.On("FileExists", target).Return(false).Once()
	mockFSAdapter.On("WriteFile", target, mock.MatchedBy(func(content []byte) bool {
		return strings.Contains(string(content), "void get_shouldSucceed()")
	}), mock.Anything).Return(nil).Once()
	mockUI.On("Notify", mock.Anything, "%sTest.java generated with %d test method(s)", "Widget", 1).Once()
	mockReportStore.On("AppendRecords", m.Path(".testsmith-reports"), mock.MatchedBy(func(records []m.GenerationRecord) bool {
		return len(records) == 1 &&
			records[0].ClassName == "Widget" &&
			records[0].TargetPath == target &&
			!records[0].Merged
	})).Return(nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:   []m.Path{source},
		All:     true,
		Reports: ".testsmith-reports",
		Config:  m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertExpectations(t)
	mockJavaAdapter.AssertExpectations(t)
	mockReportStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Generate_MergesIntoExistingFile(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	target := m.Path("WidgetTest.java")
	src := []byte("class Widget {}")
	existing := []byte("class WidgetTest {\n}\n")

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockFSAdapter.On("ResolveTestPath", source, m.Path(""), "org.sample", "Widget").
		Return(target, nil).Once()
	mockFSAdapter.On("FileExists", target).Return(true).Once()
	mockFSAdapter.On("ReadFile", target).Return(existing, nil).Once()
	mockFSAdapter.On("WriteFile", target, mock.MatchedBy(func(content []byte) bool {
		text := string(content)
		return strings.HasPrefix(text, "class WidgetTest {") &&
			strings.Contains(text, "void get_shouldSucceed()")
	}), mock.Anything).Return(nil).Once()
	mockUI.On("Notify", mock.Anything, "%sTest.java generated with %d test method(s)", "Widget", 1).Once()
	mockReportStore.On("AppendRecords", mock.Anything, mock.MatchedBy(func(records []m.GenerationRecord) bool {
		return len(records) == 1 && records[0].Merged
	})).Return(nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:  []m.Path{source},
		All:    true,
		Config: m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertExpectations(t)
	mockReportStore.AssertExpectations(t)
}

func TestWorkflow_Generate_SkipsUpToDateFile(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	target := m.Path("WidgetTest.java")
	src := []byte("class Widget {}")

	// Existing content already mentions the only generated method, so the
	// merge is a no-op and nothing gets written.
	existing := []byte("class WidgetTest {\n    void get_shouldSucceed() {\n    }\n}\n")

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockFSAdapter.On("ResolveTestPath", source, m.Path(""), "org.sample", "Widget").
		Return(target, nil).Once()
	mockFSAdapter.On("FileExists", target).Return(true).Once()
	mockFSAdapter.On("ReadFile", target).Return(existing, nil).Once()
	mockUI.On("Notify", mock.Anything, "%sTest.java already up to date", "Widget").Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:  []m.Path{source},
		All:    true,
		Config: m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	mockReportStore.AssertNotCalled(t, "AppendRecords", mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_DryRunWritesNothing(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	target := m.Path("WidgetTest.java")
	src := []byte("class Widget {}")

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockFSAdapter.On("ResolveTestPath", source, m.Path(""), "org.sample", "Widget").
		Return(target, nil).Once()
	mockUI.On("Notify", mock.Anything, "--- %s\n%s", target, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "void get_shouldSucceed()")
	})).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:  []m.Path{source},
		All:    true,
		DryRun: true,
		Config: m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	mockReportStore.AssertNotCalled(t, "AppendRecords", mock.Anything, mock.Anything)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Generate_PickerCancellationSkipsClass(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	src := []byte("class Widget {}")

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockUI.On("PickOperations", mock.Anything, mock.Anything).
		Return(nil, controller.ErrSelectionCancelled).Once()
	mockUI.On("Notify", mock.Anything, "%s skipped", "Widget").Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:  []m.Path{source},
		Config: m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Generate_MethodFilterSkipsPicker(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	target := m.Path("WidgetTest.java")
	src := []byte("class Widget {}")

	decl := widgetDeclaration(source)
	decl.Methods = append(decl.Methods, m.MethodDeclaration{
		Name: "remove", ReturnType: "void", IsPublic: true,
		Parameters: []m.ParameterDeclaration{{TypeName: "Long", Name: "id"}},
	})

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{decl}, nil).Once()
	mockFSAdapter.On("ResolveTestPath", source, m.Path(""), "org.sample", "Widget").
		Return(target, nil).Once()
	mockFSAdapter.On("FileExists", target).Return(false).Once()
	mockFSAdapter.On("WriteFile", target, mock.MatchedBy(func(content []byte) bool {
		text := string(content)
		return strings.Contains(text, "void remove_shouldSucceed()") &&
			!strings.Contains(text, "void get_shouldSucceed()")
	}), mock.Anything).Return(nil).Once()
	mockUI.On("Notify", mock.Anything, "%sTest.java generated with %d test method(s)", "Widget", 1).Once()
	mockReportStore.On("AppendRecords", mock.Anything, mock.Anything).Return(nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{
		Paths:   []m.Path{source},
		Methods: []string{"remove"},
		Config:  m.DefaultGeneratorConfig(),
	})

	// Assert
	assert.NoError(t, err)
	mockUI.AssertNotCalled(t, "PickOperations", mock.Anything, mock.Anything)
	mockFSAdapter.AssertExpectations(t)
}

func TestWorkflow_Generate_NoSourcesWarns(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	mockUI.On("Warn", mock.Anything, "no Java sources found").Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{Paths: []m.Path{"missing"}})

	// Assert
	assert.NoError(t, err)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Generate_CollectError(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	collectErr := errors.New("bad exclude pattern")
	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return(nil, collectErr).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{Paths: []m.Path{"."}})

	// Assert
	assert.ErrorIs(t, err, collectErr)
}

func TestWorkflow_Generate_SkipsInterfaces(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("WidgetApi.java")
	src := []byte("interface WidgetApi {}")

	decl := m.ClassDeclaration{
		PackageName: "org.sample",
		Name:        "WidgetApi",
		Kind:        m.KindInterface,
		SourcePath:  source,
	}

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{decl}, nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.Generate(context.Background(), domain.GenerateArgs{Paths: []m.Path{source}, All: true})

	// Assert
	assert.NoError(t, err)
	mockFSAdapter.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
	mockUI.AssertNotCalled(t, "Warn", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_List_CollectsSummaries(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Widget.java")
	src := []byte("class Widget {}")

	mockFSAdapter.On("CollectJavaFiles", []m.Path{source}, []string(nil)).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return([]m.ClassDeclaration{widgetDeclaration(source)}, nil).Once()
	mockUI.On("DisplayClassSummaries", mock.Anything, mock.MatchedBy(func(summaries []controller.ClassSummary) bool {
		return len(summaries) == 1 &&
			summaries[0].ClassName == "Widget" &&
			summaries[0].Dependencies == 1 &&
			summaries[0].Operations == 1
	})).Return(nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.List(context.Background(), domain.ListArgs{Paths: []m.Path{source}, Parallel: 2})

	// Assert
	assert.NoError(t, err)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_List_ParseErrorPropagates(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	source := m.Path("Broken.java")
	src := []byte{0xff, 0xfe}
	parseErr := errors.New("source is not valid UTF-8")

	mockFSAdapter.On("CollectJavaFiles", mock.Anything, mock.Anything).
		Return([]m.Path{source}, nil).Once()
	mockFSAdapter.On("ReadFile", source).Return(src, nil).Once()
	mockJavaAdapter.On("Parse", mock.Anything, source, src).
		Return(nil, parseErr).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.List(context.Background(), domain.ListArgs{Paths: []m.Path{source}, Parallel: 1})

	// Assert
	assert.ErrorIs(t, err, parseErr)
	mockUI.AssertNotCalled(t, "DisplayClassSummaries", mock.Anything, mock.Anything)
}

func TestWorkflow_View_DisplaysRecords(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	records := []m.GenerationRecord{
		{ClassName: "Widget", TargetPath: "WidgetTest.java", Methods: 2},
	}

	mockReportStore.On("LoadRecords", m.Path(".testsmith-reports")).
		Return(records, nil).Once()
	mockUI.On("DisplayRecords", mock.Anything, records).Return(nil).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.View(context.Background(), domain.ViewArgs{Reports: ".testsmith-reports"})

	// Assert
	assert.NoError(t, err)
	mockReportStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	// Arrange
	mockJavaAdapter := new(adaptermocks.MockJavaFileAdapter)
	mockFSAdapter := new(adaptermocks.MockSourceFSAdapter)
	mockReportStore := new(adaptermocks.MockReportStore)
	mockUI := new(controllermocks.MockUI)

	loadErr := errors.New("corrupt records file")
	mockReportStore.On("LoadRecords", mock.Anything).Return(nil, loadErr).Once()

	wf := newTestWorkflow(mockJavaAdapter, mockFSAdapter, mockReportStore, mockUI)

	// Act
	err := wf.View(context.Background(), domain.ViewArgs{})

	// Assert
	assert.ErrorIs(t, err, loadErr)
	mockUI.AssertNotCalled(t, "DisplayRecords", mock.Anything, mock.Anything)
}
