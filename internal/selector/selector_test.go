package selector

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

func options() []catalog.Option {
	return []catalog.Option{
		{Key: 1, Label: "proj1 (10 MB) [/work/proj1/vendor]"},
		{Key: 2, Label: "api (1.5 KB) [/work/api/vendor]"},
		{Key: 3, Label: "legacy (500 B) [/work/legacy/vendor]"},
	}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, c := m.Update(msg)
		m = next.(Model)
		cmd = c
	}
	return m, cmd
}

func TestModel_ToggleAndConfirm(t *testing.T) {
	m := NewModel("Select vendor directories to delete", options())

	m, _ = press(t, m, "space", "down", "down", "space")
	assert.Equal(t, []int{1, 3}, m.Selected())

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd, "enter with a selection opens the confirmation screen")
	assert.Contains(t, m.View(), "Permanently delete 2 directories?")
	assert.Contains(t, m.View(), "/work/legacy/vendor")

	m, cmd = press(t, m, "y")
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.False(t, m.Cancelled())
	assert.Equal(t, []int{1, 3}, m.Selected())
}

func TestModel_BackFromConfirmation(t *testing.T) {
	m := NewModel("pick", options())

	m, _ = press(t, m, "space", "enter", "n")
	assert.False(t, m.Done())
	assert.Contains(t, m.View(), "1 of 3 selected")

	m, _ = press(t, m, "space")
	assert.Empty(t, m.Selected())
}

func TestModel_ToggleAll(t *testing.T) {
	m := NewModel("pick", options())

	m, _ = press(t, m, "a")
	assert.Equal(t, []int{1, 2, 3}, m.Selected())

	m, _ = press(t, m, "a")
	assert.Empty(t, m.Selected())
}

func TestModel_EnterWithNothingSelectedFinishesEmpty(t *testing.T) {
	m, cmd := press(t, NewModel("pick", options()), "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Empty(t, m.Selected())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c", "esc"} {
		m, cmd := press(t, NewModel("pick", options()), "space", k)
		require.NotNil(t, cmd, k)
		assert.True(t, m.Cancelled(), k)
		assert.False(t, m.Done(), k)
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := NewModel("pick", options())

	m, _ = press(t, m, "up", "down", "down", "down", "down", "space")
	assert.Equal(t, []int{3}, m.Selected())
}

func TestModel_ScrollsLongLists(t *testing.T) {
	var opts []catalog.Option
	for i := 1; i <= 50; i++ {
		opts = append(opts, catalog.Option{Key: i, Label: strings.Repeat("x", i)})
	}
	m := NewModel("pick", opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = next.(Model)

	for i := 0; i < 20; i++ {
		m, _ = press(t, m, "down")
	}
	assert.Equal(t, 20, m.cursor)
	assert.LessOrEqual(t, m.offset, m.cursor)
	assert.Less(t, m.cursor, m.offset+m.viewportHeight())
}

func TestParseSelection(t *testing.T) {
	keys := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		answer string
		want   []int
	}{
		{"empty", "", nil},
		{"spaces", "1 3", []int{1, 3}},
		{"commas", "1,3", []int{1, 3}},
		{"mixed", " 5, 1  2 ", []int{5, 1, 2}},
		{"range", "2-4", []int{2, 3, 4}},
		{"range and single", "1,3-4", []int{1, 3, 4}},
		{"duplicates", "2 2 1-2", []int{2, 1}},
		{"all", "ALL", []int{1, 2, 3, 4, 5}},
		{"out of range passes through", "9", []int{9}},
		{"negative passes through", "-1", []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.answer, keys)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelection_Errors(t *testing.T) {
	keys := []int{1, 2, 3}

	_, err := ParseSelection("one", keys)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "got %v", err)

	_, err = ParseSelection("3-1", keys)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "got %v", err)

	_, err = ParseSelection("1-1000000000", keys)
	assert.True(t, errors.Is(err, errors.ErrInvalidSelection), "got %v", err)

	_, err = ParseSelection("q", keys)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPrompt_Select(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{In: strings.NewReader("1 3\ny\n"), Out: &out}

	got, err := p.Select(context.Background(), "Select vendor directories to delete", options())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
	assert.Contains(t, out.String(), "  1. proj1 (10 MB) [/work/proj1/vendor]")
	assert.Contains(t, out.String(), "Permanently delete 2 directories? [y/N]")
}

func TestPrompt_DeclinedConfirmation(t *testing.T) {
	p := &Prompt{In: strings.NewReader("2\nn\n"), Out: &bytes.Buffer{}}

	got, err := p.Select(context.Background(), "pick", options())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Nil(t, got)
}

func TestPrompt_EndOfInputSelectsNothing(t *testing.T) {
	p := &Prompt{In: strings.NewReader(""), Out: &bytes.Buffer{}}

	got, err := p.Select(context.Background(), "pick", options())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrompt_NoOptionsNeverReads(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{In: strings.NewReader("1\ny\n"), Out: &out}

	got, err := p.Select(context.Background(), "pick", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, out.String())
}

func TestPrompt_TrailingInputIsIgnored(t *testing.T) {
	p := &Prompt{In: strings.NewReader("1\ny\nextra\nmore\n"), Out: &bytes.Buffer{}}

	got, err := p.Select(context.Background(), "pick", options())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestLineReader_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lr := newLineReader(ctx, strings.NewReader("1\ny\nextra\nmore\n"))

	line, ok, err := lr.next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", line)

	// Nobody reads the remaining lines; cancelling must still release the
	// reader goroutine, which closes lines on exit.
	cancel()
	done := make(chan struct{})
	go func() {
		for range lr.lines {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("line reader goroutine still running after cancel")
	}

	_, ok, _ = lr.next()
	assert.False(t, ok)
}
