// Package session runs one learner's quiz: it pairs the quiz engine with the
// running score, per-word progress and the event log.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/store"
)

// SnapshotKeep is how many progress snapshots End leaves in the store.
const SnapshotKeep = 10

var (
	ErrBusy          = errors.New("an answer is already being graded")
	ErrNoActiveItem  = errors.New("no active quiz item")
	ErrAlreadyGraded = errors.New("quiz item already graded")
	ErrNotSkippable  = errors.New("only listening items can be skipped")
)

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Rand           quiz.Rand
	MaxRecentTypes int
	Tracker        *progress.Tracker
	Events         store.EventRepo
	Snapshots      store.SnapshotRepo
	Logger         *slog.Logger
	Now            func() time.Time
	NewID          func() string
}

// Session is safe for concurrent use; a single learner drives it.
type Session struct {
	mu      sync.Mutex
	grading atomic.Bool

	engine  *quiz.Engine
	tracker *progress.Tracker
	events  store.EventRepo
	snaps   store.SnapshotRepo
	log     *slog.Logger
	now     func() time.Time
	newID   func() string

	id        string
	active    bool
	startedAt time.Time
	endedAt   time.Time
	topic     string
	requested quiz.Type
	score     quiz.Score
	served    int
	current   *quiz.ItemState
	servedAt  time.Time
}

// New creates a session over catalog.
func New(catalog *quiz.Catalog, opts Options) *Session {
	s := &Session{
		engine:  quiz.NewEngine(catalog, opts.Rand, opts.MaxRecentTypes),
		tracker: opts.Tracker,
		events:  opts.Events,
		snaps:   opts.Snapshots,
		log:     opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if s.tracker == nil {
		s.tracker = progress.NewTracker(nil)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "session")
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// LoadTracker restores progress from the newest snapshot in repo. A nil
// repo or an empty store yields a fresh tracker.
func LoadTracker(ctx context.Context, repo store.SnapshotRepo) (*progress.Tracker, error) {
	if repo == nil {
		return progress.NewTracker(nil), nil
	}
	snap, err := repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return progress.NewTracker(nil), nil
	}
	return progress.NewTracker(snap.Data.Progress), nil
}

// Catalog returns the topics the session can quiz on.
func (s *Session) Catalog() *quiz.Catalog {
	return s.engine.Catalog()
}

// Tracker returns the learner's progress tracker.
func (s *Session) Tracker() *progress.Tracker {
	return s.tracker
}

// ID returns the current session ID, or "" before the first item.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Score returns the running score.
func (s *Session) Score() quiz.Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Current returns a copy of the active item state, or nil.
func (s *Session) Current() *quiz.ItemState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Next serves a fresh item for topic. The first call after New or End
// starts a new session. A nil state with a nil error means the topic's
// dataset cannot serve the requested type.
func (s *Session) Next(ctx context.Context, topic string, requested quiz.Type) (*quiz.ItemState, error) {
	if requested == "" {
		requested = quiz.TypeMixed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine.Catalog().Topic(topic); err != nil {
		return nil, err
	}
	if !s.active {
		s.start(ctx, topic, requested)
	}
	s.topic = topic
	s.requested = requested

	item, err := s.engine.Next(topic, requested)
	if err != nil {
		return nil, err
	}
	if item == nil {
		s.current = nil
		return nil, nil
	}

	s.current = quiz.NewItemState(item)
	s.servedAt = s.now()
	s.served++

	cp := *s.current
	return &cp, nil
}

func (s *Session) start(ctx context.Context, topic string, requested quiz.Type) {
	s.id = s.newID()
	s.active = true
	s.startedAt = s.now()
	s.score.Reset()
	s.served = 0
	s.engine.Reset()
	s.tracker.ResetSession()

	s.log.InfoContext(ctx, "quiz session started",
		slog.String("session_id", s.id),
		slog.String("topic", topic),
		slog.String("type", string(requested)))

	if s.events == nil {
		return
	}
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.id,
		Action:    store.SessionStart,
		Topic:     topic,
		QuizType:  string(requested),
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to record session start", slog.Any("error", err))
	}
}

// Submit grades answer against the active item, exactly once.
func (s *Session) Submit(ctx context.Context, answer quiz.Answer) (quiz.Verdict, error) {
	if !s.grading.CompareAndSwap(false, true) {
		return quiz.Verdict{}, ErrBusy
	}
	defer s.grading.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return quiz.Verdict{}, ErrNoActiveItem
	}
	st := s.current
	if st.Phase != quiz.PhaseUnanswered {
		return st.Verdict, ErrAlreadyGraded
	}

	verdict, err := st.Submit(answer)
	if err != nil {
		return verdict, ErrAlreadyGraded
	}
	if err := st.Complete(&s.score); err != nil {
		return verdict, fmt.Errorf("complete item: %w", err)
	}

	now := s.now()
	s.tracker.Answer(verdict.Correct)
	for _, w := range itemWords(st.Item) {
		s.tracker.Record(w, s.topic, verdict.Correct, now)
	}

	s.recordAnswer(ctx, st, false, now)
	return verdict, nil
}

// Skip closes the active listening item without touching the score.
func (s *Session) Skip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoActiveItem
	}
	st := s.current
	if st.Item.Type() != quiz.TypeAudioQuiz {
		return ErrNotSkippable
	}
	if err := st.Skip(); err != nil {
		return ErrAlreadyGraded
	}
	s.recordAnswer(ctx, st, true, s.now())
	return nil
}

func (s *Session) recordAnswer(ctx context.Context, st *quiz.ItemState, skipped bool, now time.Time) {
	if s.events == nil {
		return
	}
	data := store.AnswerEventData{
		SessionID:     s.id,
		Topic:         s.topic,
		QuizType:      string(st.Item.Type()),
		Word:          primaryWord(st.Item),
		Prompt:        st.Item.Prompt(),
		CorrectAnswer: correctAnswer(st.Item),
		LearnerAnswer: describeAnswer(st.Answer),
		Correct:       st.Verdict.Correct,
		Skipped:       skipped,
		TimeMs:        now.Sub(s.servedAt).Milliseconds(),
	}
	if err := s.events.AppendAnswerEvent(ctx, data); err != nil {
		s.log.WarnContext(ctx, "failed to record answer", slog.Any("error", err))
	}
}

// End closes the session, logging a summary event and saving a progress
// snapshot. Calling End again before the next item returns the previous
// summary and persists nothing.
func (s *Session) End(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := s.summary()
	if !s.active {
		return sum, nil
	}
	s.active = false
	s.current = nil
	s.endedAt = s.now()
	sum.Duration = s.endedAt.Sub(s.startedAt)

	s.log.InfoContext(ctx, "quiz session ended",
		slog.String("session_id", s.id),
		slog.Int("served", sum.Served),
		slog.Int("correct", sum.Score.Correct),
		slog.Int("total", sum.Score.Total))

	var errs []error
	if s.events != nil {
		err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.id,
			Action:          store.SessionEnd,
			Topic:           s.topic,
			QuizType:        string(s.requested),
			QuestionsServed: sum.Served,
			CorrectAnswers:  sum.Score.Correct,
			DurationSecs:    int(sum.Duration.Seconds()),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("record session end: %w", err))
		}
	}
	if s.snaps != nil {
		if err := s.saveSnapshot(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return sum, errors.Join(errs...)
}

func (s *Session) saveSnapshot(ctx context.Context) error {
	snap := &store.Snapshot{
		Timestamp: s.now(),
		Data: store.SnapshotData{
			Version:  store.SnapshotVersion,
			Progress: s.tracker.SnapshotData(),
		},
	}
	if err := s.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	if err := s.snaps.Prune(ctx, SnapshotKeep); err != nil {
		return fmt.Errorf("prune progress snapshots: %w", err)
	}
	return nil
}

// Restart throws away the running score and rotation window and starts a
// new session on the next item. Nothing is persisted.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.current = nil
	s.score.Reset()
	s.served = 0
	s.engine.Reset()
	s.tracker.ResetSession()
}
