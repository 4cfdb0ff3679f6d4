package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var sessionColumns = []string{
	"session_id", "action", "topic", "quiz_type",
	"questions_served", "correct_answers", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.appendEvent(ctx, tableSessionEvents, sessionColumns, []any{
		data.SessionID,
		data.Action,
		data.Topic,
		data.QuizType,
		data.QuestionsServed,
		data.CorrectAnswers,
		data.DurationSecs,
	})
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query, args := selectEvents(tableSessionEvents, sessionColumns, opts,
		entsql.EQ("action", SessionEnd),
	).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRecord
	for rows.Next() {
		var s SessionSummaryRecord
		if err := rows.Scan(
			&s.Sequence, &s.Timestamp,
			&s.SessionID, &s.Action, &s.Topic, &s.QuizType,
			&s.QuestionsServed, &s.CorrectAnswers, &s.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return out, nil
}
