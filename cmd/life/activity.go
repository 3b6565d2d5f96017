package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/prompt"
	"github.com/spf13/cobra"
)

func newStartCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "start <activity>",
		Short: "Start an activity, finishing the ongoing one",
		Long: "Start an activity by name, or by a slash-delimited path such as work/coding.\n" +
			"A path creates any missing categories. An unknown single name asks where\n" +
			"in the activity tree to put it.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.run(func(ctx context.Context, a *app, args []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}
			svc := a.timeline(prompt.NewTerminal(c.stdin, c.stdout))
			entry, err := svc.Start(ctx, name, strings.Join(args, " "))
			if err != nil {
				return err
			}
			tree, err := svc.Tree(ctx, name)
			if err != nil {
				return err
			}
			label := entry.Name
			if m, err := tree.Find(taxonomy.ByID(entry.ActivityID)); err == nil {
				label = m.FullName()
			}
			fmt.Fprintf(c.stdout, "Started '%s'.\n", label)
			return nil
		}),
	}
}

func newDoneCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Finish the ongoing activity",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}
			finished, err := a.timeline(prompt.Decline{}).Done(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "You did '%s' for %s.\n", finished.Entry.Name, timeline.ElapsedPhrase(finished.Elapsed))
			return nil
		}),
	}
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the ongoing activity",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}
			status, err := a.timeline(prompt.Decline{}).Status(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Status for '%s':\n", status.User)
			if status.Current == nil {
				fmt.Fprintln(c.stdout, "There is no ongoing activity.")
				return nil
			}
			fmt.Fprintf(c.stdout, "You are currently doing '%s'\n", status.Activity.FullName())
			fmt.Fprintf(c.stdout, "You have been doing so for %s.\n", timeline.ElapsedPhrase(status.Elapsed))
			return nil
		}),
	}
}
