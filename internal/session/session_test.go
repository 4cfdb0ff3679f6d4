package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func testCatalog() *quiz.Catalog {
	c := quiz.NewCatalog()
	c.Add(&quiz.Dataset{
		Topic: "weather",
		Title: "Weather",
		Vocabulary: []quiz.VocabEntry{
			{Source: "sole", Target: "sun"},
			{Source: "pioggia", Target: "rain"},
			{Source: "neve", Target: "snow"},
			{Source: "vento", Target: "wind"},
			{Source: "nuvola", Target: "cloud"},
		},
	})
	c.Add(&quiz.Dataset{
		Topic:      "tiny",
		Title:      "Tiny",
		Vocabulary: []quiz.VocabEntry{{Source: "ciao", Target: "hello"}},
	})
	return c
}

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = quiz.NewRand(7)
	}
	if opts.Now == nil {
		clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
		opts.Now = clock.Now
	}
	if opts.NewID == nil {
		n := 0
		opts.NewID = func() string {
			n++
			return fmt.Sprintf("session-%d", n)
		}
	}
	return New(testCatalog(), opts)
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNext_UnknownTopic(t *testing.T) {
	s := newTestSession(t, Options{})
	_, err := s.Next(context.Background(), "astronomy", quiz.TypeMixed)
	if !errors.Is(err, quiz.ErrUnknownTopic) {
		t.Errorf("error = %v, want ErrUnknownTopic", err)
	}
	if s.ID() != "" {
		t.Error("an unknown topic must not start a session")
	}
}

func TestNext_InsufficientData(t *testing.T) {
	s := newTestSession(t, Options{})
	st, err := s.Next(context.Background(), "tiny", quiz.TypeMultipleChoice)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if st != nil {
		t.Errorf("expected no item, got %T", st.Item)
	}
	if s.Current() != nil {
		t.Error("Current should be empty")
	}
}

func TestNext_ReplacesUnansweredItem(t *testing.T) {
	s := newTestSession(t, Options{})
	ctx := context.Background()

	_, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	second, err := s.Next(ctx, "weather", quiz.TypeAudioQuiz)
	require.NoError(t, err)

	require.NotNil(t, s.Current())
	assert.Equal(t, quiz.TypeAudioQuiz, s.Current().Item.Type())
	assert.Equal(t, second.Item, s.Current().Item)

	sum := s.Summary()
	assert.Equal(t, 2, sum.Served)
	assert.Equal(t, quiz.Score{}, sum.Score, "abandoned items are not graded")
}

func TestSubmit_NoActiveItem(t *testing.T) {
	s := newTestSession(t, Options{})
	if _, err := s.Submit(context.Background(), quiz.TextAnswer("sole")); !errors.Is(err, ErrNoActiveItem) {
		t.Errorf("error = %v, want ErrNoActiveItem", err)
	}
}

func TestSubmit_GradesOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})

	st, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	require.NotNil(t, st)
	card := st.Item.(*quiz.Flashcard)

	v, err := s.Submit(ctx, quiz.Answer{Knew: true})
	require.NoError(t, err)
	assert.True(t, v.Correct)
	assert.Equal(t, quiz.Score{Correct: 1, Total: 1}, s.Score())
	assert.Equal(t, quiz.PhaseGraded, s.Current().Phase)

	_, err = s.Submit(ctx, quiz.Answer{Knew: false})
	assert.ErrorIs(t, err, ErrAlreadyGraded)
	assert.Equal(t, quiz.Score{Correct: 1, Total: 1}, s.Score(), "a second submit must not count")

	ws := s.Tracker().Word(card.Entry.Source)
	require.NotNil(t, ws)
	assert.Equal(t, 1, ws.Correct)
	assert.Equal(t, "weather", ws.Topic)
	assert.Equal(t, 1, s.Tracker().Session().Streak)
}

func TestSubmit_Busy(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})
	_, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)

	s.grading.Store(true)
	_, err = s.Submit(ctx, quiz.Answer{Knew: true})
	assert.ErrorIs(t, err, ErrBusy)

	s.grading.Store(false)
	_, err = s.Submit(ctx, quiz.Answer{Knew: true})
	assert.NoError(t, err)
}

func TestSubmit_MatchingRecordsEveryPair(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})

	st, err := s.Next(ctx, "weather", quiz.TypeMatching)
	require.NoError(t, err)
	require.NotNil(t, st)
	m := st.Item.(*quiz.Matching)

	ans := quiz.Answer{Pairs: map[string]string{}}
	for _, p := range m.Pairs {
		ans.Pairs[p.Source] = p.Target
	}
	v, err := s.Submit(ctx, ans)
	require.NoError(t, err)
	assert.True(t, v.Correct)

	for _, p := range m.Pairs {
		assert.NotNil(t, s.Tracker().Word(p.Source), p.Source)
	}
	assert.Equal(t, 1, s.Score().Total, "one item, one point")
}

func TestSkip(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})

	_, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Skip(ctx), ErrNotSkippable)

	_, err = s.Next(ctx, "weather", quiz.TypeAudioQuiz)
	require.NoError(t, err)
	require.NoError(t, s.Skip(ctx))
	assert.Equal(t, quiz.Score{}, s.Score(), "skips are neutral")
	assert.ErrorIs(t, s.Skip(ctx), ErrAlreadyGraded)

	_, err = s.Submit(ctx, quiz.TextAnswer("sole"))
	assert.ErrorIs(t, err, ErrAlreadyGraded)
}

func TestEnd_PersistsEventsAndSnapshot(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)
	s := newTestSession(t, Options{Events: db.EventRepo(), Snapshots: db.SnapshotRepo()})

	st, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	word := st.Item.(*quiz.Flashcard).Entry.Source
	_, err = s.Submit(ctx, quiz.Answer{Knew: false})
	require.NoError(t, err)

	sum, err := s.End(ctx)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sum.SessionID)
	assert.Equal(t, 1, sum.Served)
	assert.Equal(t, quiz.Score{Correct: 0, Total: 1}, sum.Score)
	assert.Equal(t, []string{word}, sum.Review)
	assert.True(t, sum.Duration > 0)

	answers, err := db.EventRepo().RecentAnswers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, word, answers[0].Word)
	assert.Equal(t, "flashcard", answers[0].QuizType)
	assert.Equal(t, "knew=false", answers[0].LearnerAnswer)
	assert.Equal(t, "session-1", answers[0].SessionID)
	assert.False(t, answers[0].Correct)

	sums, err := db.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, 1, sums[0].QuestionsServed)
	assert.Equal(t, 0, sums[0].CorrectAnswers)

	tracker, err := LoadTracker(ctx, db.SnapshotRepo())
	require.NoError(t, err)
	ws := tracker.Word(word)
	require.NotNil(t, ws)
	assert.True(t, ws.NeedsReview)

	// Ending twice persists nothing new.
	_, err = s.End(ctx)
	require.NoError(t, err)
	sums, err = db.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, sums, 1)
}

func TestNextAfterEnd_StartsFreshSession(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})

	_, err := s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	_, err = s.Submit(ctx, quiz.Answer{Knew: true})
	require.NoError(t, err)
	_, err = s.End(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Score().Total, "the ended score stays readable")

	_, err = s.Next(ctx, "weather", quiz.TypeFlashcard)
	require.NoError(t, err)
	assert.Equal(t, "session-2", s.ID())
	assert.Equal(t, quiz.Score{}, s.Score())
	assert.Equal(t, 1, s.Summary().Served)
}

func TestRestart(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, Options{})

	for range 3 {
		_, err := s.Next(ctx, "weather", quiz.TypeMixed)
		require.NoError(t, err)
	}
	s.Restart()
	assert.Nil(t, s.Current())
	assert.Equal(t, quiz.Score{}, s.Score())
	assert.Zero(t, s.engine.Recent().Len())
}

func TestLoadTracker_Empty(t *testing.T) {
	tr, err := LoadTracker(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tr.Words())

	db := openTestStore(t)
	tr, err = LoadTracker(context.Background(), db.SnapshotRepo())
	require.NoError(t, err)
	assert.Empty(t, tr.Words())
}

func TestDescribeAnswer(t *testing.T) {
	tests := []struct {
		in   quiz.Answer
		want string
	}{
		{quiz.TextAnswer("sole"), "sole"},
		{quiz.Answer{Pairs: map[string]string{"neve": "snow", "acqua": "water"}}, "acqua=water, neve=snow"},
		{quiz.Answer{Letters: []string{"s", "o", "l", "e"}}, "sole"},
		{quiz.Answer{Words: []string{"fa", "caldo"}}, "fa caldo"},
		{quiz.Answer{Knew: true}, "knew=true"},
	}
	for _, tt := range tests {
		if got := describeAnswer(tt.in); got != tt.want {
			t.Errorf("describeAnswer(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
