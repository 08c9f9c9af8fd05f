package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	selectWidth  = 48
	selectHeight = 14
)

var (
	selectTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#28A745")).
		Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
		PaddingLeft(4)

	selectedItemStyle = lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("#28A745"))

	activeMarkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262"))
)

type profileItem string

func (i profileItem) FilterValue() string { return string(i) }

// profileDelegate renders one profile per line and marks the active one.
type profileDelegate struct {
	active string
}

func (d profileDelegate) Height() int                             { return 1 }
func (d profileDelegate) Spacing() int                            { return 0 }
func (d profileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d profileDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	profile, ok := listItem.(profileItem)
	if !ok {
		return
	}

	line := string(profile)
	if d.active != "" && line == d.active {
		line += activeMarkStyle.Render(" (active)")
	}

	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+line))
		return
	}
	fmt.Fprint(w, itemStyle.Render(line))
}

type selectKeyMap struct {
	choose key.Binding
	quit   key.Binding
}

func newSelectKeyMap() selectKeyMap {
	return selectKeyMap{
		choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "switch"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

// SelectModel is a single-choice profile list.
type SelectModel struct {
	list      list.Model
	keys      selectKeyMap
	choice    string
	quitting  bool
	cancelled bool
}

// NewSelectModel lists candidates in the given order with the cursor on
// active when it is one of them.
func NewSelectModel(candidates []string, active string) *SelectModel {
	items := make([]list.Item, len(candidates))
	cursor := 0
	for i, c := range candidates {
		items[i] = profileItem(c)
		if active != "" && c == active {
			cursor = i
		}
	}

	keys := newSelectKeyMap()

	l := list.New(items, profileDelegate{active: active}, selectWidth, selectHeight)
	l.Title = "Choose a provider"
	l.Styles.Title = selectTitleStyle
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.choose}
	}
	l.Select(cursor)

	return &SelectModel{
		list: l,
		keys: keys,
	}
}

func (m *SelectModel) Init() tea.Cmd {
	return nil
}

func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Keys typed into the filter belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.choose):
			if profile, ok := m.list.SelectedItem().(profileItem); ok {
				m.choice = string(profile)
			}
			m.quitting = true
			return m, tea.Quit
		case msg.String() == "esc" && m.list.FilterState() == list.FilterApplied:
			// esc clears an applied filter before it cancels.
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *SelectModel) View() string {
	if m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}

// Choice returns the committed profile, false when the prompt was cancelled.
func (m *SelectModel) Choice() (string, bool) {
	return m.choice, m.choice != ""
}

// Cancelled reports whether the user dismissed the prompt with a key.
func (m *SelectModel) Cancelled() bool {
	return m.cancelled
}
