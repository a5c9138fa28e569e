package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultPickerWidth  = 60
	defaultPickerHeight = 20
)

var (
	pickerStyle      = lipgloss.NewStyle().Margin(1, 2)
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)
)

// InteractiveUI prints like SimpleUI but lets the user pick from a
// filterable list.
type InteractiveUI struct {
	*SimpleUI
}

// NewInteractiveUI creates a new InteractiveUI.
func NewInteractiveUI(cmd *cobra.Command) *InteractiveUI {
	return &InteractiveUI{SimpleUI: NewSimpleUI(cmd)}
}

// Pick runs a Bubble Tea list until the user selects an option or quits.
func (u *InteractiveUI) Pick(ctx context.Context, title string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if len(options) == 0 {
		return -1, ErrNoOptions
	}

	model := newPickerModel(title, options)

	// Get initial terminal size
	if f, ok := u.cmd.OutOrStdout().(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			h, v := pickerStyle.GetFrameSize()
			model.list.SetSize(width-h, height-v)
		}
	}

	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(u.cmd.InOrStdin()),
		tea.WithOutput(u.cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		return -1, fmt.Errorf("run picker: %w", err)
	}

	picked, ok := final.(pickerModel)
	if !ok || picked.choice < 0 {
		return -1, ErrPickCancelled
	}

	return picked.choice, nil
}

type pickItem struct {
	title string
	index int
}

func (i pickItem) Title() string       { return i.title }
func (i pickItem) Description() string { return "" }
func (i pickItem) FilterValue() string { return i.title }

// pickerModel is the Bubble Tea model behind InteractiveUI.Pick.
type pickerModel struct {
	list   list.Model
	choice int
}

func newPickerModel(title string, options []string) pickerModel {
	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = pickItem{title: option, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultPickerWidth, defaultPickerHeight)
	l.Title = title
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)

	return pickerModel{list: l, choice: -1}
}

func (p pickerModel) Init() tea.Cmd {
	return nil
}

func (p pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickerStyle.GetFrameSize()
		p.list.SetSize(msg.Width-h, msg.Height-v)

		return p, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}

		if p.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := p.list.SelectedItem().(pickItem); ok {
				p.choice = item.index
				return p, tea.Quit
			}
		case "q", "esc":
			if p.list.FilterState() == list.Unfiltered {
				return p, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)

	return p, cmd
}

func (p pickerModel) View() string {
	if p.choice >= 0 {
		return ""
	}

	return pickerStyle.Render(p.list.View())
}
