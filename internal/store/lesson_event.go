package store

import (
	"context"
	"fmt"
)

var lessonColumns = []string{
	"lesson_id", "title", "source", "video_id", "source_language",
	"difficulty", "word_count", "vocabulary_count", "duration_ms",
}

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	err := r.appendEvent(ctx, tableLessonEvents, lessonColumns, []any{
		data.LessonID,
		data.Title,
		data.Source,
		data.VideoID,
		data.SourceLanguage,
		data.Difficulty,
		data.WordCount,
		data.VocabularyCount,
		data.DurationMs,
	})
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error) {
	query, args := selectEvents(tableLessonEvents, lessonColumns, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	defer rows.Close()

	var out []LessonRecord
	for rows.Next() {
		var l LessonRecord
		if err := rows.Scan(
			&l.Sequence, &l.Timestamp,
			&l.LessonID, &l.Title, &l.Source, &l.VideoID, &l.SourceLanguage,
			&l.Difficulty, &l.WordCount, &l.VocabularyCount, &l.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("scan lesson event: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	return out, nil
}
