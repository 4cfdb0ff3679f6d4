package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Topic: "weather", QuizType: "multipleChoice", Word: "sole", Prompt: "sun", CorrectAnswer: "sole", LearnerAnswer: "sole", Correct: true, TimeMs: 1200},
		{SessionID: "s1", Topic: "weather", QuizType: "fillBlank", Word: "pioggia", CorrectAnswer: "pioggia", LearnerAnswer: "piogia", Correct: false, TimeMs: 3400},
		{SessionID: "s1", Topic: "food", QuizType: "flashcard", Word: "pane", CorrectAnswer: "bread", Correct: true},
	}
	for _, a := range answers {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	recent, err := repo.RecentAnswers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// newest first
	assert.Equal(t, "pane", recent[0].Word)
	assert.Equal(t, "pioggia", recent[1].Word)
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence)
	assert.False(t, recent[1].Correct)
	assert.Equal(t, "piogia", recent[1].LearnerAnswer)
	assert.Equal(t, int64(3400), recent[1].TimeMs)
	assert.WithinDuration(t, time.Now(), recent[0].Timestamp, time.Minute)

	weather, err := repo.QueryAnswers(ctx, QueryOpts{Topic: "weather"})
	require.NoError(t, err)
	assert.Len(t, weather, 2)

	after, err := repo.QueryAnswers(ctx, QueryOpts{After: recent[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "pane", after[0].Word)

	before, err := repo.QueryAnswers(ctx, QueryOpts{Before: recent[1].Sequence})
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, "sole", before[0].Word)

	future, err := repo.QueryAnswers(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.TopicAccuracy(ctx, "weather")
	require.NoError(t, err)
	assert.Zero(t, acc)
	assert.Zero(t, n)

	for _, a := range []AnswerEventData{
		{Topic: "weather", Correct: true},
		{Topic: "weather", Correct: true},
		{Topic: "weather", Correct: false},
		{Topic: "weather", Skipped: true},
		{Topic: "food", Correct: false},
	} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}

	acc, n, err = repo.TopicAccuracy(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "skipped answers are not counted")
	assert.InDelta(t, 2.0/3.0, acc, 1e-9)
}

func TestLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLessonEvent(ctx, LessonEventData{
		LessonID: "abc", Title: `Learn from: "Seasons"`, Source: "video", VideoID: "xyz",
		SourceLanguage: "it", Difficulty: "beginner", WordCount: 80, VocabularyCount: 15, DurationMs: 9000,
	}))

	lessons, err := repo.QueryLessons(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	l := lessons[0]
	assert.Equal(t, "abc", l.LessonID)
	assert.Equal(t, "xyz", l.VideoID)
	assert.Equal(t, 80, l.WordCount)
	assert.Equal(t, 15, l.VocabularyCount)
	assert.Equal(t, int64(9000), l.DurationMs)
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart, Topic: "food", QuizType: "mixed"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: SessionEnd, Topic: "food", QuizType: "mixed",
		QuestionsServed: 10, CorrectAnswers: 7, DurationSecs: 300,
	}))

	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, sums, 1, "start events are not summaries")
	assert.Equal(t, 10, sums[0].QuestionsServed)
	assert.Equal(t, 7, sums[0].CorrectAnswers)
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLessonEvent(ctx, LessonEventData{LessonID: "l"}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{Topic: "food"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{Action: SessionEnd}))

	lessons, err := repo.QueryLessons(ctx, QueryOpts{})
	require.NoError(t, err)
	answers, err := repo.RecentAnswers(ctx, 0)
	require.NoError(t, err)
	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), lessons[0].Sequence)
	assert.Equal(t, int64(2), answers[0].Sequence)
	assert.Equal(t, int64(3), sums[0].Sequence)
}
