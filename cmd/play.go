package cmd

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/capisco/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive quiz player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, restores progress and launches the TUI. Logs go
// to the configured file only, so they never draw over the screen.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	e, err := openEnv(cmd, envOptions{quietLog: true, catalog: true})
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.newSession(ctx, nil)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	runErr := app.Run(sess, e.events())

	// Quitting mid-quiz still saves the session.
	if _, err := sess.End(ctx); err != nil {
		e.log.Warn("failed to save session on exit", slog.Any("error", err))
	}
	return runErr
}
