package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lakshaymaurya-felt/vendorkill/internal/catalog"
	"github.com/lakshaymaurya-felt/vendorkill/internal/errors"
)

// Prompt is the line-based selector used when stdin or stdout is not a
// terminal. It reads a selection such as "1 3", "1,3", "2-4" or "all",
// then asks for a y/N confirmation.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// Select prints the options and reads the operator's answer. End of input
// before any answer is an empty selection.
func (p *Prompt) Select(ctx context.Context, label string, options []catalog.Option) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	fmt.Fprintln(p.Out, label)
	keys := make([]int, 0, len(options))
	for _, o := range options {
		fmt.Fprintf(p.Out, "  %3d. %s\n", o.Key, o.Label)
		keys = append(keys, o.Key)
	}

	// The reader goroutine must not outlive this call when more input
	// follows the answers.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := newLineReader(ctx, p.In)

	fmt.Fprint(p.Out, "Numbers to delete (e.g. 1 3, 2-4, all; empty for none): ")
	answer, ok, err := lines.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		fmt.Fprintln(p.Out)
		return nil, nil
	}

	selected, err := ParseSelection(answer, keys)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, nil
	}

	fmt.Fprintf(p.Out, "Permanently delete %d director%s? [y/N]: ", len(selected), pluralY(len(selected)))
	confirm, ok, err := lines.next()
	if err != nil {
		return nil, err
	}
	if !ok || !isYes(confirm) {
		if !ok {
			fmt.Fprintln(p.Out)
		}
		return nil, ErrCancelled
	}
	return selected, nil
}

// ParseSelection turns an answer into option keys. keys lists every valid
// key in display order and backs "all". Duplicates are dropped and the
// order of first appearance is kept. "q" or "quit" cancels.
func ParseSelection(answer string, keys []int) ([]int, error) {
	answer = strings.TrimSpace(strings.ToLower(answer))
	switch answer {
	case "":
		return nil, nil
	case "q", "quit":
		return nil, ErrCancelled
	case "all", "*":
		return append([]int(nil), keys...), nil
	}

	tokens := strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[int]bool)
	var out []int
	add := func(k int) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	for _, tok := range tokens {
		lo, hi, isRange := strings.Cut(tok, "-")
		if !isRange || lo == "" {
			// A leading "-" is a negative number, not a range.
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.NewInvalidArgument(fmt.Sprintf("cannot parse selection %q", tok))
			}
			add(n)
			continue
		}

		from, err1 := strconv.Atoi(lo)
		to, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil || from > to {
			return nil, errors.NewInvalidArgument(fmt.Sprintf("cannot parse range %q", tok))
		}
		// Keys are distinct, so a range longer than the key list must
		// reach outside it.
		if to-from >= len(keys) {
			return nil, errors.NewInvalidSelection(to, len(keys))
		}
		for k := from; k <= to; k++ {
			add(k)
		}
	}
	return out, nil
}

func isYes(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "y", "yes":
		return true
	}
	return false
}

// lineReader reads lines from r without blocking past ctx cancellation.
type lineReader struct {
	ctx   context.Context
	lines chan string
	errs  chan error
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{
		ctx:   ctx,
		lines: make(chan string),
		errs:  make(chan error, 1),
	}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			lr.errs <- err
		}
	}()
	return lr
}

// next returns the next line. ok is false at end of input.
func (lr *lineReader) next() (line string, ok bool, err error) {
	select {
	case <-lr.ctx.Done():
		return "", false, lr.ctx.Err()
	case line, ok = <-lr.lines:
		if !ok {
			select {
			case err = <-lr.errs:
			default:
			}
		}
		return line, ok, err
	}
}
