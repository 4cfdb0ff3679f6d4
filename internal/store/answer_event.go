package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var answerColumns = []string{
	"session_id", "topic", "quiz_type", "word", "prompt",
	"correct_answer", "learner_answer", "correct", "skipped", "time_ms",
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.appendEvent(ctx, tableAnswerEvents, answerColumns, []any{
		data.SessionID,
		data.Topic,
		data.QuizType,
		data.Word,
		data.Prompt,
		data.CorrectAnswer,
		data.LearnerAnswer,
		data.Correct,
		data.Skipped,
		data.TimeMs,
	})
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error) {
	var extra []*entsql.Predicate
	if opts.Topic != "" {
		extra = append(extra, entsql.EQ("topic", opts.Topic))
	}
	query, args := selectEvents(tableAnswerEvents, answerColumns, opts, extra...).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var a AnswerRecord
		if err := rows.Scan(
			&a.Sequence, &a.Timestamp,
			&a.SessionID, &a.Topic, &a.QuizType, &a.Word, &a.Prompt,
			&a.CorrectAnswer, &a.LearnerAnswer, &a.Correct, &a.Skipped, &a.TimeMs,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return r.QueryAnswers(ctx, QueryOpts{Limit: limit})
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topic string) (float64, int, error) {
	query, args := builder().
		Select("correct").
		From(entsql.Table(tableAnswerEvents)).
		Where(entsql.And(
			entsql.EQ("topic", topic),
			entsql.EQ("skipped", false),
		)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	total, correct := 0, 0
	for rows.Next() {
		var ok bool
		if err := rows.Scan(&ok); err != nil {
			return 0, 0, fmt.Errorf("scan topic accuracy: %w", err)
		}
		total++
		if ok {
			correct++
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}
