package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "new <user>",
		Short: "Create a user with an empty timeline",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, a *app, args []string) error {
			u, err := a.users.Create(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Created user '%s'.\n", u.Name)
			if def, err := a.users.Default(ctx); err == nil && def == u.Name {
				fmt.Fprintf(c.stdout, "'%s' is now the default user.\n", u.Name)
			}
			return nil
		}),
	}
}

func newUseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "use <user>",
		Short: "Make a user the default",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, a *app, args []string) error {
			if err := a.users.SetDefault(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "'%s' is now the default user.\n", strings.TrimSpace(args[0]))
			return nil
		}),
	}
}
