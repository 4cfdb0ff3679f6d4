package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/capisco/internal/pipeline"
	"github.com/abhisek/capisco/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson and quiz JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, err := openEnv(cmd, envOptions{catalog: true})
		if err != nil {
			return err
		}
		defer e.Close()

		if cmd.Flags().Changed("host") {
			e.cfg.Server.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			e.cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		pc := e.cfg.Pipeline
		p := pipeline.New(pipeline.Config{
			MinStepDelay:       pc.MinStepDelay,
			MaxStepDelay:       pc.MaxStepDelay,
			MaxDurationSeconds: pc.MaxDurationSeconds,
			SourceLanguage:     pc.SourceLanguage,
			TargetLanguage:     pc.TargetLanguage,
		}, pipeline.WithLogger(e.log), pipeline.WithEvents(e.events()))

		sess, err := e.newSession(ctx, nil)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		defer func() {
			// The signal context is done by now.
			if _, err := sess.End(context.Background()); err != nil {
				e.log.Warn("failed to save session on shutdown", slog.Any("error", err))
			}
		}()

		srv := server.New(p, sess, e.cfg.CORS, e.log)
		return srv.ListenAndServe(ctx, e.cfg.Server)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Listen host (overrides config)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides config)")
}
