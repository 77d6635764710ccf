package selector

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
)

// ─── Keys ────────────────────────────────────────────────────────────────────

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Next    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "delete selected"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// selectHelp is the key set shown while picking entries.
type selectHelp keyMap

func (k selectHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Next, k.Quit}
}

func (k selectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// confirmHelp is the key set shown on the confirmation screen.
type confirmHelp keyMap

func (k confirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

func (k confirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ─── Model ───────────────────────────────────────────────────────────────────

type screen int

const (
	screenSelect screen = iota
	screenConfirm
)

// Model is the bubbletea model behind the interactive selector. It only
// records choices; nothing is deleted from inside the program.
type Model struct {
	label     string
	options   []catalog.Option
	chosen    map[int]bool // keyed by Option.Key
	cursor    int
	offset    int // viewport scroll offset
	width     int
	height    int
	screen    screen
	keys      keyMap
	help      help.Model
	done      bool
	cancelled bool
}

// NewModel creates a selector over options with nothing chosen.
func NewModel(label string, options []catalog.Option) Model {
	return Model{
		label:   label,
		options: options,
		chosen:  make(map[int]bool, len(options)),
		width:   80,
		height:  24,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.screen == screenConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateSelect(msg)
	}

	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor >= 0 && m.cursor < len(m.options) {
			k := m.options[m.cursor].Key
			if m.chosen[k] {
				delete(m.chosen, k)
			} else {
				m.chosen[k] = true
			}
		}

	case key.Matches(msg, m.keys.All):
		if len(m.chosen) == len(m.options) {
			m.chosen = make(map[int]bool, len(m.options))
		} else {
			for _, o := range m.options {
				m.chosen[o.Key] = true
			}
		}

	case key.Matches(msg, m.keys.Next):
		if len(m.chosen) == 0 {
			// Nothing to confirm; finish with an empty selection.
			m.done = true
			return m, tea.Quit
		}
		m.screen = screenConfirm

	case msg.String() == "esc":
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.screen = screenSelect
	}
	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// Selected returns the chosen keys in ascending order.
func (m Model) Selected() []int {
	keys := make([]int, 0, len(m.chosen))
	for k := range m.chosen {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Cancelled reports whether the operator quit without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the operator finished with a selection (possibly
// empty).
func (m Model) Done() bool {
	return m.done
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 7 // header (3) + footer (2) + padding
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) chosenOptions() []catalog.Option {
	var out []catalog.Option
	for _, o := range m.options {
		if m.chosen[o.Key] {
			out = append(out, o)
		}
	}
	return out
}
