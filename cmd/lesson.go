package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/capisco/internal/analyzer"
	"github.com/abhisek/capisco/internal/pipeline"
	"github.com/abhisek/capisco/internal/transcript"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate a vocabulary lesson from a transcript",
	Long: `Generate a lesson from an uploaded transcript file or a video URL.

The video lookup is a stand-in that returns a sample transcript; no network
access is made. Use --json to print the full lesson document.`,
	RunE: runLesson,
}

func init() {
	lessonCmd.Flags().String("file", "", "Path to a transcript text file")
	lessonCmd.Flags().String("url", "", "Video URL (youtube.com/watch?v=ID or youtu.be/ID)")
	lessonCmd.Flags().String("source", "", "Transcript language (default from config)")
	lessonCmd.Flags().String("target", "", "Translation language (default from config)")
	lessonCmd.Flags().Bool("json", false, "Print the lesson as JSON")
	lessonCmd.Flags().Bool("fast", false, "Skip the pacing delay between steps")
	lessonCmd.MarkFlagsOneRequired("file", "url")
}

func runLesson(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	url, _ := cmd.Flags().GetString("url")
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	asJSON, _ := cmd.Flags().GetBool("json")
	fast, _ := cmd.Flags().GetBool("fast")

	e, err := openEnv(cmd, envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	pc := e.cfg.Pipeline
	cfg := pipeline.Config{
		MinStepDelay:       pc.MinStepDelay,
		MaxStepDelay:       pc.MaxStepDelay,
		MaxDurationSeconds: pc.MaxDurationSeconds,
		SourceLanguage:     pc.SourceLanguage,
		TargetLanguage:     pc.TargetLanguage,
	}
	if fast {
		cfg.MinStepDelay, cfg.MaxStepDelay = 0, 0
	}

	stderr := cmd.ErrOrStderr()
	p := pipeline.New(cfg,
		pipeline.WithLogger(e.log),
		pipeline.WithEvents(e.events()),
		pipeline.WithObserver(func(ev pipeline.StepEvent) {
			mark := "…"
			if ev.State == pipeline.StateComplete {
				mark = "✓"
			}
			fmt.Fprintf(stderr, "[%d/%d] %s %s\n", ev.Index+1, len(pipeline.Steps), mark, ev.Name.Label())
		}),
	)

	lesson, err := p.Generate(cmd.Context(), pipeline.Request{
		Input:          transcript.Input{FilePath: file, VideoURL: url},
		SourceLanguage: source,
		TargetLanguage: target,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(lesson)
	}
	printLesson(out, lesson)
	return nil
}

func printLesson(w io.Writer, l *analyzer.Lesson) {
	fmt.Fprintf(w, "\n%s\n", l.Title)
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "Language: %s   Difficulty: %s   Words: %d   Study time: %d min\n",
		l.SourceLanguage, l.Difficulty, l.Analysis.WordCount, l.Analysis.EstimatedStudyTimeMinutes)
	if len(l.Analysis.Topics) > 0 {
		fmt.Fprintf(w, "Topics: %s\n", strings.Join(l.Analysis.Topics, ", "))
	}

	fmt.Fprintf(w, "\n%-16s  %-8s  %-2s  %-14s  %s\n", "Word", "Class", "G", "Category", "Translation")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, v := range l.Vocabulary {
		translation := "-"
		if t, ok := l.Translation(v); ok {
			translation = t.Target
		}
		fmt.Fprintf(w, "%-16s  %-8s  %-2s  %-14s  %s\n",
			v.Word, v.PartOfSpeech, v.Gender, v.Category, translation)
	}

	fmt.Fprintln(w, "\nSections:")
	for _, s := range l.Sections {
		fmt.Fprintf(w, "  %-24s %d words\n", s.Title, len(s.Vocabulary))
	}

	fmt.Fprintln(w, "\nLearning path:")
	for _, s := range l.LearningPath {
		fmt.Fprintf(w, "  %d. %s: %s\n", s.Number, s.Title, s.Description)
	}

	if len(l.Translations) > 0 {
		fmt.Fprintln(w, "\nNotes:")
		keys := make([]string, 0, len(l.Translations))
		for k := range l.Translations {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t := l.Translations[k]
			fmt.Fprintf(w, "  %s /%s/  %s\n", k, t.Pronunciation, t.UsageNote)
		}
	}

	fmt.Fprintf(w, "\n%s\n", l.StudyGuide.Overview)
}
