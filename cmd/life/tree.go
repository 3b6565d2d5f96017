package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/prompt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTreeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the activity tree",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}
			tree, err := a.timeline(prompt.Decline{}).Tree(ctx, name)
			if err != nil {
				return err
			}
			if tree.Len() == 0 {
				fmt.Fprintln(c.stdout, "The activity tree is empty.")
				return nil
			}
			tree.Walk(func(n taxonomy.Node, path []string) bool {
				suffix := ""
				if !n.IsLeaf() {
					suffix = "/"
				}
				fmt.Fprintf(c.stdout, "%s%s%s\n", strings.Repeat("  ", len(path)), n.Name, suffix)
				return true
			})
			return nil
		}),
	}
}

type exportDoc struct {
	User       string         `yaml:"user"`
	Activities []exportNode   `yaml:"activities"`
	Days       []exportDayDoc `yaml:"days"`
}

type exportNode struct {
	Name     string       `yaml:"name"`
	ID       string       `yaml:"id"`
	Children []exportNode `yaml:"children,omitempty"`
}

type exportDayDoc struct {
	Day     string        `yaml:"day"`
	Entries []exportEntry `yaml:"entries"`
}

type exportEntry struct {
	Activity   string `yaml:"activity"`
	ActivityID string `yaml:"activity_id"`
	Start      string `yaml:"start"`
	End        string `yaml:"end,omitempty"`
	Previous   bool   `yaml:"previous,omitempty"`
}

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the activity tree and timeline as YAML",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}
			doc, err := buildExport(ctx, a.timeline(prompt.Decline{}), name)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(c.stdout)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			return enc.Close()
		}),
	}
}

func buildExport(ctx context.Context, svc *timeline.Service, name string) (*exportDoc, error) {
	tree, err := svc.Tree(ctx, name)
	if err != nil {
		return nil, err
	}
	activities, err := exportLevel(tree, "")
	if err != nil {
		return nil, err
	}
	doc := &exportDoc{User: name, Activities: activities, Days: []exportDayDoc{}}

	days, err := svc.Days(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, day := range days {
		entries, err := svc.Day(ctx, name, day)
		if err != nil {
			return nil, err
		}
		out := exportDayDoc{Day: day, Entries: make([]exportEntry, 0, len(entries))}
		for _, e := range entries {
			item := exportEntry{
				Activity:   e.Name,
				ActivityID: e.ActivityID,
				Start:      e.StartedAt.UTC().Format(time.RFC3339),
				Previous:   e.Previous,
			}
			if e.EndedAt != nil {
				item.End = e.EndedAt.UTC().Format(time.RFC3339)
			}
			out.Entries = append(out.Entries, item)
		}
		doc.Days = append(doc.Days, out)
	}
	return doc, nil
}

func exportLevel(tree *taxonomy.Tree, parentID string) ([]exportNode, error) {
	level, err := tree.Level(parentID)
	if err != nil {
		return nil, err
	}
	out := make([]exportNode, 0, len(level))
	for _, n := range level {
		children, err := exportLevel(tree, n.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, exportNode{Name: n.Name, ID: n.ID, Children: children})
	}
	return out, nil
}
