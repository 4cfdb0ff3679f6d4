package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/session"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer quiz questions for a topic on the command line",
	Long: `Serve quiz items for one topic and read answers from standard input.

Progress is saved to the database unless --no-save is given.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("topic", "", "Topic to practise (see 'capisco topics') (required)")
	quizCmd.Flags().String("type", string(quiz.TypeMixed), "Quiz type, or mixed to rotate")
	quizCmd.Flags().Int("count", 5, "Number of questions")
	quizCmd.Flags().Uint64("seed", 0, "Random seed for a repeatable quiz (0 = random)")
	quizCmd.Flags().Bool("no-save", false, "Do not record answers or progress")
	_ = quizCmd.MarkFlagRequired("topic")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	typeVal, _ := cmd.Flags().GetString("type")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	noSave, _ := cmd.Flags().GetBool("no-save")

	qtype, err := quiz.ParseType(typeVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1 (got %d)", count)
	}

	e, err := openEnv(cmd, envOptions{noStore: noSave, catalog: true})
	if err != nil {
		return err
	}
	defer e.Close()

	ds, err := e.catalog.Topic(topic)
	if err != nil {
		return err
	}

	var rng quiz.Rand
	if seed != 0 {
		rng = quiz.NewRand(seed)
	}
	ctx := cmd.Context()
	sess, err := e.newSession(ctx, rng)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "Topic: %s (%s)\n", ds.Title, qtype.Label())
	fmt.Fprintf(out, "%d questions. Type your answer and press Enter.\n\n", count)

	for i := 1; i <= count; i++ {
		st, err := sess.Next(ctx, ds.Topic, qtype)
		if err != nil {
			return err
		}
		if st == nil {
			fmt.Fprintf(out, "%s has no material for %s questions.\n", ds.Title, qtype.Label())
			break
		}

		fmt.Fprintf(out, "── Question %d/%d · %s ──\n", i, count, st.Item.Type().Label())
		answer, skip, ok := askItem(out, in, st.Item)
		if !ok {
			break
		}

		if skip {
			if err := sess.Skip(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Skipped.")
			fmt.Fprintln(out)
			continue
		}

		v, err := sess.Submit(ctx, answer)
		if err != nil {
			return err
		}
		if v.Correct {
			fmt.Fprintln(out, "Esatto!")
		} else {
			fmt.Fprintln(out, "Not quite.")
		}
		fmt.Fprintln(out, v.Explanation)
		fmt.Fprintln(out)
	}

	sum, err := sess.End(ctx)
	printQuizSummary(out, sum)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// askItem prints item and reads one answer. skip reports a blank answer to a
// listening item; ok is false when input ran out.
func askItem(out io.Writer, in *bufio.Scanner, item quiz.Item) (answer quiz.Answer, skip, ok bool) {
	fmt.Fprintln(out, item.Prompt())

	read := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	switch q := item.(type) {
	case *quiz.MultipleChoice:
		for j, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o.Source)
		}
		line, ok := read("\nYour answer: ")
		if !ok {
			return answer, false, false
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
			line = q.Options[n-1].Source
		}
		return quiz.TextAnswer(line), false, true

	case *quiz.Matching:
		for j, p := range q.Pairs {
			fmt.Fprintf(out, "  %c) %s\n", 'a'+j, p.Source)
		}
		fmt.Fprintln(out)
		for j, t := range q.Targets {
			fmt.Fprintf(out, "  %d) %s\n", j+1, t)
		}
		line, ok := read("\nNumber for each letter, in order (e.g. 2 1 4 3): ")
		if !ok {
			return answer, false, false
		}
		return quiz.Answer{Pairs: parsePairs(q, line)}, false, true

	case *quiz.Flashcard:
		if _, ok := read("(press Enter to flip) "); !ok {
			return answer, false, false
		}
		fmt.Fprintf(out, "→ %s\n", q.Back)
		line, ok := read("Did you know it? [y/n]: ")
		if !ok {
			return answer, false, false
		}
		return quiz.Answer{Knew: strings.HasPrefix(strings.ToLower(line), "y")}, false, true

	case *quiz.LetterPicker:
		fmt.Fprintf(out, "Letters: %s\n", strings.Join(q.Letters, " "))
		line, ok := read("\nYour answer: ")
		if !ok {
			return answer, false, false
		}
		return quiz.TextAnswer(line), false, true

	case *quiz.WordOrder:
		fmt.Fprintf(out, "Words: %s\n", strings.Join(q.Scrambled, " / "))
		line, ok := read("\nYour answer: ")
		if !ok {
			return answer, false, false
		}
		return quiz.Answer{Words: strings.Fields(line)}, false, true

	case *quiz.AudioQuiz:
		line, ok := read("\nYour answer (blank to skip): ")
		if !ok {
			return answer, false, false
		}
		if line == "" {
			return answer, true, true
		}
		return quiz.TextAnswer(line), false, true

	default:
		line, ok := read("\nYour answer: ")
		if !ok {
			return answer, false, false
		}
		return quiz.TextAnswer(line), false, true
	}
}

// parsePairs maps the i-th number on line to the i-th source row.
func parsePairs(q *quiz.Matching, line string) map[string]string {
	pairs := make(map[string]string, len(q.Pairs))
	for j, f := range strings.Fields(line) {
		if j >= len(q.Pairs) {
			break
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(q.Targets) {
			continue
		}
		pairs[q.Pairs[j].Source] = q.Targets[n-1]
	}
	return pairs
}

func printQuizSummary(out io.Writer, sum session.Summary) {
	fmt.Fprintln(out, strings.Repeat("═", 40))
	fmt.Fprintf(out, "Score: %d/%d (%d%%)\n", sum.Score.Correct, sum.Score.Total, sum.Score.Percent())
	fmt.Fprintf(out, "Best streak: %d   Level: %s\n", sum.Stats.MaxStreak, sum.Difficulty)
	if len(sum.Review) > 0 {
		fmt.Fprintf(out, "Review soon: %s\n", strings.Join(sum.Review, ", "))
	}
}
