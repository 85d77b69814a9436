package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/booklist/internal/library"
)

// LinePrompter asks for edit input one line at a time. Fields already set in
// its defaults are not asked for; the year is never prompted.
// End of input or a cancelled context counts as the user backing out. A read
// still pending at cancellation keeps its goroutine until input arrives, so
// once cancelled the prompter stops reading and keeps returning ErrCancelled.
type LinePrompter struct {
	in        *bufio.Reader
	out       io.Writer
	defaults  library.Input
	cancelled bool
}

func NewLinePrompter(in io.Reader, out io.Writer, defaults library.Input) *LinePrompter {
	return &LinePrompter{
		in:       bufio.NewReader(in),
		out:      out,
		defaults: defaults,
	}
}

func (p *LinePrompter) PromptEdit(ctx context.Context, id int64) (library.Input, error) {
	input := p.defaults

	if input.Title == "" {
		title, err := p.ask(ctx, "Enter new title: ")
		if err != nil {
			return library.Input{}, err
		}
		input.Title = title
	}
	if input.Author == "" {
		author, err := p.ask(ctx, "Enter new author: ")
		if err != nil {
			return library.Input{}, err
		}
		input.Author = author
	}
	return input, nil
}

type lineResult struct {
	line string
	err  error
}

func (p *LinePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if p.cancelled {
		return "", library.ErrCancelled
	}

	fmt.Fprint(p.out, prompt)

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		p.cancelled = true
		return "", library.ErrCancelled
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && r.line != "" {
				return strings.TrimSpace(r.line), nil
			}
			if errors.Is(r.err, io.EOF) {
				return "", library.ErrCancelled
			}
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}
