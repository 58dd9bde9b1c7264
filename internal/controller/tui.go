package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// TUI implements UI with a Bubble Tea checkbox picker for method
// selection. Table output is delegated to the embedded SimpleUI.
type TUI struct {
	*SimpleUI

	output io.Writer
}

// NewTUI creates a new TUI writing to the provided output.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, output: output}
}

// PickOperations shows the picker and returns the names of the checked
// operations. Dismissing the picker returns ErrSelectionCancelled.
func (t *TUI) PickOperations(ctx context.Context, model m.ClassModel) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(model.Operations) == 0 {
		return nil, nil
	}

	picker := newPickerModel(model)

	program := tea.NewProgram(picker, tea.WithOutput(t.output), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("method picker: %w", err)
	}

	result, ok := final.(pickerModel)
	if !ok || !result.confirmed {
		return nil, ErrSelectionCancelled
	}

	return result.selectedNames(), nil
}

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "move up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "move down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		None:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "generate")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "cancel")),
	}
}

type pickItem struct {
	name    string
	label   string
	checked bool
}

// pickerModel is the Bubble Tea model for the method checkbox list.
// All methods start checked, matching the selection dialog defaults.
type pickerModel struct {
	className string
	depCount  int
	items     []pickItem
	cursor    int
	keys      pickerKeyMap
	confirmed bool
	quitting  bool
}

func newPickerModel(model m.ClassModel) pickerModel {
	items := make([]pickItem, 0, len(model.Operations))
	for _, op := range model.Operations {
		items = append(items, pickItem{
			name:    op.Name,
			label:   operationLabel(op),
			checked: true,
		})
	}

	return pickerModel{
		className: model.ClassName,
		depCount:  len(model.Dependencies),
		items:     items,
		keys:      defaultPickerKeyMap(),
	}
}

func operationLabel(op m.Operation) string {
	paramTypes := make([]string, 0, len(op.Parameters))
	for _, param := range op.Parameters {
		paramTypes = append(paramTypes, param.TypeName)
	}

	label := fmt.Sprintf("%s(%s): %s", op.Name, strings.Join(paramTypes, ", "), op.ReturnType)

	if len(op.FailureModes) > 0 {
		label += fmt.Sprintf(" throws %s", strings.Join(op.FailureModes, ", "))
	}

	return label
}

func (p pickerModel) Init() tea.Cmd {
	return nil
}

func (p pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keys.Toggle):
		p.items[p.cursor].checked = !p.items[p.cursor].checked
	case key.Matches(keyMsg, p.keys.All):
		p.setAll(true)
	case key.Matches(keyMsg, p.keys.None):
		p.setAll(false)
	case key.Matches(keyMsg, p.keys.Confirm):
		p.confirmed = true
		p.quitting = true

		return p, tea.Quit
	case key.Matches(keyMsg, p.keys.Quit):
		p.quitting = true

		return p, tea.Quit
	}

	return p, nil
}

func (p *pickerModel) setAll(checked bool) {
	for i := range p.items {
		p.items[i].checked = checked
	}
}

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pickerHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	pickerCheckedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (p pickerModel) View() string {
	if p.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render(fmt.Sprintf("Generate tests for %s", p.className)))
	b.WriteString("\n")
	b.WriteString(pickerHintStyle.Render(fmt.Sprintf("%d mocked dependency(ies) detected", p.depCount)))
	b.WriteString("\n\n")

	for i, item := range p.items {
		checkbox := "[ ]"
		if item.checked {
			checkbox = pickerCheckedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s %s", checkbox, item.label)

		if i == p.cursor {
			line = pickerSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pickerHintStyle.Render("space toggle · a all · n none · enter generate · q cancel"))
	b.WriteString("\n")

	return b.String()
}

func (p pickerModel) selectedNames() []string {
	var names []string

	for _, item := range p.items {
		if item.checked {
			names = append(names, item.name)
		}
	}

	return names
}
