// Package selector asks the operator which catalog entries to delete.
package selector

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
)

// ErrCancelled is returned when the operator leaves without confirming.
var ErrCancelled = stderrors.New("selection cancelled")

// Gateway returns the keys of the options the operator picked. The result
// may be empty. Callers validate keys against their own catalog.
type Gateway interface {
	Select(ctx context.Context, label string, options []catalog.Option) ([]int, error)
}

// New returns the interactive selector when both in and out are terminals,
// and the line prompt otherwise.
func New(in *os.File, out *os.File) Gateway {
	if isTerminal(in) && isTerminal(out) {
		return &TUI{In: in, Out: out}
	}
	return &Prompt{In: in, Out: out}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TUI is the full-screen bubbletea selector.
type TUI struct {
	In  io.Reader
	Out io.Writer
}

// Select runs the selector until the operator confirms or quits.
func (t *TUI) Select(ctx context.Context, label string, options []catalog.Option) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(NewModel(label, options),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() || !m.Done() {
		return nil, ErrCancelled
	}
	return m.Selected(), nil
}
