package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Topic  string    // exact topic match, answer events only
}

// SnapshotVersion is the current SnapshotData layout.
const SnapshotVersion = 1

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
}

// ProgressSnapshotData is the serialized form of the progress tracker.
type ProgressSnapshotData struct {
	Words      map[string]*WordStatsData `json:"words"`
	Difficulty string                    `json:"difficulty"`
	Recent     []bool                    `json:"recent,omitempty"`
	MaxStreak  int                       `json:"max_streak"`
}

// WordStatsData is the serialized form of one word's review history.
// Times are RFC3339.
type WordStatsData struct {
	Word         string `json:"word"`
	Topic        string `json:"topic,omitempty"`
	Correct      int    `json:"correct"`
	Incorrect    int    `json:"incorrect"`
	FirstSeen    string `json:"first_seen"`
	LastReviewed string `json:"last_reviewed"`
	NeedsReview  bool   `json:"needs_review"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)
}

// AnswerEventData captures one graded or skipped quiz item.
type AnswerEventData struct {
	SessionID     string
	Topic         string
	QuizType      string
	Word          string
	Prompt        string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Skipped       bool
	TimeMs        int64
}

// AnswerRecord is a stored answer event.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LessonEventData captures one generated lesson.
type LessonEventData struct {
	LessonID        string
	Title           string
	Source          string
	VideoID         string
	SourceLanguage  string
	Difficulty      string
	WordCount       int
	VocabularyCount int
	DurationMs      int64
}

// LessonRecord is a stored lesson event.
type LessonRecord struct {
	Sequence  int64
	Timestamp time.Time
	LessonEventData
}

// Session actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData captures a quiz session start or end.
type SessionEventData struct {
	SessionID       string
	Action          string
	Topic           string
	QuizType        string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionSummaryRecord is a stored session end event.
type SessionSummaryRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records a quiz answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLessonEvent records a generated lesson.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryAnswers returns answer events newest first.
	QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error)

	// RecentAnswers returns the newest limit answer events.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error)

	// TopicAccuracy returns the fraction of correct, non-skipped answers for
	// topic and how many answers it is based on.
	TopicAccuracy(ctx context.Context, topic string) (float64, int, error)

	// QueryLessons returns lesson events newest first.
	QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error)

	// QuerySessionSummaries returns session end events newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
