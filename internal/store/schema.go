package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	tableAnswerEvents  = "answer_events"
	tableLessonEvents  = "lesson_events"
	tableSessionEvents = "session_events"
	tableSnapshots     = "snapshots"
)

// Columns shared by every event table. The sequence comes from the global
// counter; timestamp is UTC wall-clock time.
const (
	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventColumns returns the base columns every event table starts with,
// followed by extra.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
	}, extra...)
}

func eventTable(name string, columns []*schema.Column, indexed ...string) *schema.Table {
	t := &schema.Table{
		Name:       name,
		Columns:    columns,
		PrimaryKey: []*schema.Column{columns[0]},
	}
	for _, colName := range append([]string{colTimestamp}, indexed...) {
		for _, c := range columns {
			if c.Name == colName {
				t.Indexes = append(t.Indexes, &schema.Index{
					Name:    name + "_" + colName,
					Columns: []*schema.Column{c},
				})
			}
		}
	}
	return t
}

var (
	// AnswerEventsColumns holds one graded (or skipped) quiz item per row.
	AnswerEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "topic", Type: field.TypeString},
		&schema.Column{Name: "quiz_type", Type: field.TypeString},
		&schema.Column{Name: "word", Type: field.TypeString},
		&schema.Column{Name: "prompt", Type: field.TypeString},
		&schema.Column{Name: "correct_answer", Type: field.TypeString},
		&schema.Column{Name: "learner_answer", Type: field.TypeString},
		&schema.Column{Name: "correct", Type: field.TypeBool},
		&schema.Column{Name: "skipped", Type: field.TypeBool},
		&schema.Column{Name: "time_ms", Type: field.TypeInt64},
	)
	AnswerEventsTable = eventTable(tableAnswerEvents, AnswerEventsColumns, "session_id", "topic", "word")

	// LessonEventsColumns holds one generated lesson per row.
	LessonEventsColumns = eventColumns(
		&schema.Column{Name: "lesson_id", Type: field.TypeString},
		&schema.Column{Name: "title", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString},
		&schema.Column{Name: "video_id", Type: field.TypeString},
		&schema.Column{Name: "source_language", Type: field.TypeString},
		&schema.Column{Name: "difficulty", Type: field.TypeString},
		&schema.Column{Name: "word_count", Type: field.TypeInt},
		&schema.Column{Name: "vocabulary_count", Type: field.TypeInt},
		&schema.Column{Name: "duration_ms", Type: field.TypeInt64},
	)
	LessonEventsTable = eventTable(tableLessonEvents, LessonEventsColumns, "lesson_id")

	// SessionEventsColumns holds quiz session start and end markers.
	SessionEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "topic", Type: field.TypeString},
		&schema.Column{Name: "quiz_type", Type: field.TypeString},
		&schema.Column{Name: "questions_served", Type: field.TypeInt},
		&schema.Column{Name: "correct_answers", Type: field.TypeInt},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt},
	)
	SessionEventsTable = eventTable(tableSessionEvents, SessionEventsColumns, "session_id")

	// SnapshotsColumns holds learner state captures.
	SnapshotsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colTimestamp, Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	SnapshotsTable = &schema.Table{
		Name:       tableSnapshots,
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshots_timestamp", Columns: []*schema.Column{SnapshotsColumns[2]}},
			{Name: "snapshots_sequence", Columns: []*schema.Column{SnapshotsColumns[1]}},
		},
	}

	// Tables lists every table created by auto-migration.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LessonEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)
