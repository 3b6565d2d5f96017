package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/domain/user"
	"github.com/spf13/cobra"
)

var version = "dev"

// cli carries the global flags and the process streams.
type cli struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	user       string
	configPath string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "life",
		Short:         "Track what you spend your time on",
		Long:          "life records the activities you do during the day. Activities live in a\ncategory tree such as work/coding that grows as you start new things.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&c.user, "user", "u", "", "user whose timeline to use (default: the default user)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		newStartCmd(c),
		newDoneCmd(c),
		newStatusCmd(c),
		newNewCmd(c),
		newUseCmd(c),
		newTreeCmd(c),
		newExportCmd(c),
		newServeCmd(c),
	)
	return root
}

// run opens the app for the duration of one command.
func (c *cli) run(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(c.configPath, c.stderr)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd.Context(), a, args)
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, taxonomy.ErrUserCancelled):
		return "Nothing started: the activity was not created."
	case errors.Is(err, taxonomy.ErrAlreadyExists):
		return "That activity already exists. Start it by its name instead of the full path."
	case errors.Is(err, taxonomy.ErrInvalidName):
		return "Activity names must not be empty."
	case errors.Is(err, timeline.ErrNoOngoingActivity):
		return "There is no ongoing activity."
	case errors.Is(err, user.ErrNoDefaultUser):
		return "No user selected. Create one with 'life new <name>' or pass --user."
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrUserExists):
		return fmt.Sprintf("%s.", capitalize(err.Error()))
	case errors.Is(err, user.ErrInvalidInput):
		return "User names must not be empty or contain slashes."
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
