package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		ctx := cmd.Context()

		e, err := openEnv(cmd, envOptions{catalog: true})
		if err != nil {
			return err
		}
		defer e.Close()

		tracker, err := session.LoadTracker(ctx, e.store.SnapshotRepo())
		if err != nil {
			return err
		}
		events := e.store.EventRepo()
		out := cmd.OutOrStdout()
		now := time.Now()

		fmt.Fprintf(out, "Level: %s   Words seen: %d   Best streak: %d\n\n",
			tracker.Difficulty(), len(tracker.Words()), tracker.BestStreak())

		fmt.Fprintln(out, "Topic accuracy")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, ds := range e.catalog.Datasets() {
			acc, n, err := events.TopicAccuracy(ctx, ds.Topic)
			if err != nil {
				return fmt.Errorf("topic accuracy: %w", err)
			}
			if n == 0 {
				fmt.Fprintf(out, "%-24s  %s\n", ds.Title, "-")
				continue
			}
			fmt.Fprintf(out, "%-24s  %3.0f%%  (%d answers)\n", ds.Title, acc*100, n)
		}

		queue := tracker.ReviewQueue(now)
		fmt.Fprintf(out, "\nReview queue (%d due)\n", len(queue))
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for i, ws := range queue {
			if i == limit {
				fmt.Fprintf(out, "... and %d more\n", len(queue)-limit)
				break
			}
			fmt.Fprintf(out, "%-18s  %-14s  %3.0f%%  %d tries\n",
				ws.Word, ws.Topic, ws.SuccessRate()*100, ws.Attempts())
		}

		sessions, err := events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		fmt.Fprintln(out, "\nRecent sessions")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions yet.")
		}
		for _, s := range sessions {
			pct := 0
			if s.QuestionsServed > 0 {
				pct = s.CorrectAnswers * 100 / s.QuestionsServed
			}
			fmt.Fprintf(out, "%s  %-14s  %2d questions  %3d%%\n",
				s.Timestamp.Local().Format("Jan 02 15:04"), s.Topic, s.QuestionsServed, pct)
		}

		recent, err := events.RecentAnswers(ctx, limit)
		if err != nil {
			return fmt.Errorf("recent answers: %w", err)
		}
		if len(recent) > 0 {
			fmt.Fprintln(out, "\nRecent answers")
			fmt.Fprintln(out, strings.Repeat("─", 48))
			for _, a := range recent {
				mark := "✗"
				switch {
				case a.Skipped:
					mark = "–"
				case a.Correct:
					mark = "✓"
				}
				fmt.Fprintf(out, "%s %-16s  %-14s  %s\n", mark, a.Word, a.QuizType, a.LearnerAnswer)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Maximum rows per section")
}
