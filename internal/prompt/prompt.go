// Package prompt provides operator channels for interactive activity creation.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrNoMoreAnswers is returned by Script once its answers are used up.
var ErrNoMoreAnswers = errors.New("no more scripted answers")

// Terminal asks questions on a writer and reads one line per answer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading from in and writing prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask writes prompt and blocks until a line is read.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Script replays fixed answers and records every prompt it was shown.
type Script struct {
	mu      sync.Mutex
	answers []string
	prompts []string
}

// NewScript creates a Script that answers with answers in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Ask records prompt and returns the next answer.
func (s *Script) Ask(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", ErrNoMoreAnswers
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Prompts returns the prompts shown so far.
func (s *Script) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Remaining returns the number of unused answers.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Decline answers "n" to every question. It stands in for an operator where
// nobody can be asked.
type Decline struct{}

// Ask always declines.
func (Decline) Ask(context.Context, string) (string, error) {
	return "n", nil
}
