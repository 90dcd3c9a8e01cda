package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cancelled is the index pick returns when the user leaves without choosing.
const cancelled = -1

// pickerItem is one selectable entry built from its display lines.
type pickerItem struct {
	index int
	lines []string
}

func (i pickerItem) Title() string {
	if len(i.lines) == 0 {
		return ""
	}
	return i.lines[0]
}

func (i pickerItem) Description() string {
	if len(i.lines) < 2 {
		return ""
	}
	return strings.Join(i.lines[1:], "  ")
}

func (i pickerItem) FilterValue() string { return strings.Join(i.lines, " ") }

// pickerKeyMap defines the keybindings for the picker.
type pickerKeyMap struct {
	Select key.Binding
	Cancel key.Binding
}

var pickerKeys = pickerKeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "cancel"),
	),
}

type pickerModel struct {
	list   list.Model
	keys   pickerKeyMap
	chosen int
}

func newPickerModel(title string, entries [][]string) pickerModel {
	items := make([]list.Item, len(entries))
	for i, lines := range entries {
		items[i] = pickerItem{index: i, lines: lines}
	}

	const defaultWidth = 80
	const listHeight = 20

	l := list.New(items, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6272A4")).
		PaddingLeft(4)
	l.Styles.HelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6272A4")).
		PaddingLeft(4).
		PaddingBottom(1)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{pickerKeys.Select}
	}

	return pickerModel{
		list:   l,
		keys:   pickerKeys,
		chosen: cancelled,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// While typing a filter, every key belongs to the list
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.chosen = item.index
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			// esc first clears an applied filter
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}
			m.chosen = cancelled
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return appStyle.Render(m.list.View())
}

// pick shows entries, each given as its display lines, and returns the index of the
// chosen entry or cancelled.
func pick(title string, entries [][]string) (int, error) {
	if len(entries) == 0 {
		return cancelled, nil
	}

	p := tea.NewProgram(newPickerModel(title, entries), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return cancelled, fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return cancelled, nil
	}
	return m.chosen, nil
}
