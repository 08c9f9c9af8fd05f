package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var (
	ErrSelectionCancelled = errors.New("no connection selected")
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrNoCandidates       = errors.New("nothing to choose from")
	ErrNotInteractive     = errors.New("interactive terminal required, pass a profile argument")
)

// Selector picks one of candidates. active is the running profile, empty
// when none is running.
type Selector interface {
	Select(ctx context.Context, candidates []string, active string) (string, error)
}

// TeaSelector prompts on the terminal with a bubbletea list.
type TeaSelector struct {
	// In is read for key presses. os.Stdin, or nil, lets bubbletea fall back
	// to /dev/tty when stdin is not a terminal.
	In  io.Reader
	Out io.Writer
}

func (s TeaSelector) Select(ctx context.Context, candidates []string, active string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}

	var input *quitOnEOFReader
	switch in := s.In.(type) {
	case nil:
	case *os.File:
		if in != os.Stdin {
			if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
				return "", ErrNotInteractive
			}
			opts = append(opts, tea.WithInput(in))
		}
	default:
		input = &quitOnEOFReader{r: in}
		opts = append(opts, tea.WithInput(input))
	}

	p := tea.NewProgram(NewSelectModel(candidates, active), opts...)
	if input != nil {
		input.program = p
	}

	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrSelectionCancelled
		}
		return "", fmt.Errorf("error running profile selector: %w", err)
	}

	m, ok := final.(*SelectModel)
	if !ok {
		return "", fmt.Errorf("unexpected selector model %T", final)
	}

	choice, ok := m.Choice()
	if !ok {
		if !m.Cancelled() && input != nil && input.closed.Load() {
			return "", fmt.Errorf("%w: input closed before a profile was chosen", ErrNotInteractive)
		}
		return "", ErrSelectionCancelled
	}
	return choice, nil
}

// quitOnEOFReader stops the program once its input is exhausted, bubbletea
// itself keeps waiting for keys after EOF.
type quitOnEOFReader struct {
	r       io.Reader
	program *tea.Program
	closed  atomic.Bool
}

func (q *quitOnEOFReader) Read(b []byte) (int, error) {
	n, err := q.r.Read(b)
	if errors.Is(err, io.EOF) && !q.closed.Swap(true) {
		go q.program.Quit()
	}
	return n, err
}

// StaticSelector always picks Choice, used when the profile is given on the
// command line.
type StaticSelector struct {
	Choice string
}

func (s StaticSelector) Select(_ context.Context, candidates []string, _ string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if !slices.Contains(candidates, s.Choice) {
		return "", fmt.Errorf("%w: %s", ErrUnknownProfile, s.Choice)
	}
	return s.Choice, nil
}
