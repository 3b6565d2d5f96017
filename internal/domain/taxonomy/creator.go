package taxonomy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Prompter is a synchronous request/response channel to the operator.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Creator walks the operator through choosing where a new activity goes.
type Creator struct {
	prompter Prompter
	logger   *slog.Logger
}

// NewCreator creates a new interactive creator.
func NewCreator(prompter Prompter, logger *slog.Logger) *Creator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Creator{prompter: prompter, logger: logger}
}

// Create asks the operator to confirm and place a new activity, then inserts it.
// Declining returns ErrUserCancelled and leaves the tree untouched.
func (c *Creator) Create(ctx context.Context, tree *Tree, name string) (*Match, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	ok, err := c.confirm(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserCancelled
	}

	parentID := ""
	var path []string
	notice := ""
	for {
		level, err := tree.Level(parentID)
		if err != nil {
			return nil, err
		}

		answer, err := c.ask(ctx, notice+selectionPrompt(path, level))
		if err != nil {
			return nil, fmt.Errorf("reading selection: %w", err)
		}
		if answer == "" {
			return c.insert(tree, parentID, name, path)
		}

		chosen, err := choose(level, answer)
		if err != nil {
			notice = fmt.Sprintf("%v\n", err)
			continue
		}
		notice = ""

		if chosen.IsLeaf() {
			return c.insert(tree, chosen.ID, name, append(path, chosen.Name))
		}
		parentID = chosen.ID
		path = append(path, chosen.Name)
	}
}

func (c *Creator) confirm(ctx context.Context, name string) (bool, error) {
	prompt := fmt.Sprintf("The activity '%s' does not exist. Would you like to create it? (y/n) ", name)
	for {
		answer, err := c.ask(ctx, prompt)
		if err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		prompt = fmt.Sprintf("Invalid option '%s'. Please use (y/n) ", answer)
	}
}

func (c *Creator) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := c.prompter.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (c *Creator) insert(tree *Tree, parentID, name string, path []string) (*Match, error) {
	n, err := tree.Insert(parentID, name)
	if err != nil {
		return nil, fmt.Errorf("creating activity %q: %w", name, err)
	}
	m := &Match{Name: n.Name, ID: n.ID, IsLeaf: true, Path: append([]string{}, path...)}
	c.logger.Debug("activity created", "name", m.FullName(), "id", m.ID)
	return m, nil
}

func selectionPrompt(path []string, level []Node) string {
	var b strings.Builder
	if len(path) == 0 {
		b.WriteString("Current activity path: [root of activity tree]\n")
	} else {
		fmt.Fprintf(&b, "Current activity path: %s\n", strings.Join(path, "/"))
	}
	for i, n := range level {
		fmt.Fprintf(&b, "  (%d) %s\n", i+1, n.Name)
	}
	b.WriteString("Which sub-activity? (press enter to create it here) ")
	return b.String()
}

func choose(level []Node, answer string) (Node, error) {
	if isDigits(answer) {
		idx, err := strconv.Atoi(answer)
		if err != nil {
			idx = 0
		}
		if idx < 1 || idx > len(level) {
			return Node{}, fmt.Errorf("%w: no option %d, pick 1-%d or press enter", ErrInvalidChoice, idx, len(level))
		}
		return level[idx-1], nil
	}
	name := canonicalName(answer)
	for _, n := range level {
		if n.Name == name {
			return n, nil
		}
	}
	return Node{}, fmt.Errorf("%w: no sub-activity named '%s'", ErrInvalidChoice, answer)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
