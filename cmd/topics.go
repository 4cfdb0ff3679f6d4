package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the quiz topics and the question types each can serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg.Quiz)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-14s  %-24s  %5s  %7s  %s\n", "Topic", "Title", "Words", "Phrases", "Types")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		datasets := catalog.Datasets()
		for _, ds := range datasets {
			types := quiz.SupportedTypes(ds)
			names := make([]string, len(types))
			for i, t := range types {
				names[i] = string(t)
			}
			fmt.Fprintf(out, "%-14s  %-24s  %5d  %7d  %s\n",
				ds.Topic, ds.Title, len(ds.Vocabulary),
				len(ds.Phrases)+len(ds.Expressions), strings.Join(names, ", "))
		}

		fmt.Fprintf(out, "\n%d topics\n", len(datasets))
		return nil
	},
}
