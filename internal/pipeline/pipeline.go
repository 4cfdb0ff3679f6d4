// Package pipeline runs the six-step lesson generation flow:
// extract, analyze, vocabulary, translate, quiz and build.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/abhisek/capisco/internal/analyzer"
	"github.com/abhisek/capisco/internal/logging"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/store"
	"github.com/abhisek/capisco/internal/transcript"
	"github.com/google/uuid"
)

// Step names one stage of generation.
type Step string

const (
	StepExtract    Step = "extract"
	StepAnalyze    Step = "analyze"
	StepVocabulary Step = "vocabulary"
	StepTranslate  Step = "translate"
	StepQuiz       Step = "quiz"
	StepBuild      Step = "build"
)

// Steps lists the stages in execution order.
var Steps = []Step{StepExtract, StepAnalyze, StepVocabulary, StepTranslate, StepQuiz, StepBuild}

// Label returns the progress text shown for s.
func (s Step) Label() string {
	switch s {
	case StepExtract:
		return "Extracting transcript"
	case StepAnalyze:
		return "Analyzing content"
	case StepVocabulary:
		return "Extracting vocabulary"
	case StepTranslate:
		return "Generating translations"
	case StepQuiz:
		return "Creating quizzes"
	case StepBuild:
		return "Building lesson"
	default:
		return string(s)
	}
}

// State is the progress state of a step.
type State string

const (
	StateActive   State = "active"
	StateComplete State = "complete"
)

// StepEvent reports a step transition. Index is zero-based.
type StepEvent struct {
	Index int
	Name  Step
	State State
}

// Observer receives step transitions. It is called synchronously from
// Generate and must not block.
type Observer func(StepEvent)

// ErrBusy is returned when a generation is already running.
var ErrBusy = errors.New("lesson generation already in progress")

// StepError reports the step that failed. No partial lesson is returned.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Config holds pacing and limits.
type Config struct {
	MinStepDelay       time.Duration
	MaxStepDelay       time.Duration
	MaxDurationSeconds int
	SourceLanguage     string
	TargetLanguage     string
}

// Request describes one generation. Text, when set, is used as-is and the
// Input is ignored.
type Request struct {
	Input          transcript.Input
	Text           string
	SourceLanguage string
	TargetLanguage string
}

// Pipeline generates lessons. A single Pipeline runs one generation at a
// time.
type Pipeline struct {
	cfg        Config
	resolver   *transcript.Resolver
	translator analyzer.Translator
	rng        quiz.Rand
	log        *slog.Logger
	observer   Observer
	events     store.EventRepo
	newID      func() string
	sleep      func(ctx context.Context, d time.Duration) error

	busy atomic.Bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver sets the step observer.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithTranslator replaces the built-in table translator.
func WithTranslator(t analyzer.Translator) Option {
	return func(p *Pipeline) { p.translator = t }
}

// WithResolver replaces the default transcript resolver.
func WithResolver(r *transcript.Resolver) Option {
	return func(p *Pipeline) { p.resolver = r }
}

// WithEvents records every generated lesson in repo.
func WithEvents(repo store.EventRepo) Option {
	return func(p *Pipeline) { p.events = repo }
}

// WithRand sets the random source used for pacing delays.
func WithRand(r quiz.Rand) Option {
	return func(p *Pipeline) { p.rng = r }
}

// WithIDFunc sets the lesson ID generator.
func WithIDFunc(f func() string) Option {
	return func(p *Pipeline) { p.newID = f }
}

// New creates a Pipeline.
func New(cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:        cfg,
		translator: analyzer.NewTableTranslator(),
		newID:      uuid.NewString,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = quiz.NewTimeRand()
	}
	if p.resolver == nil {
		p.resolver = transcript.NewResolver(transcript.NewVideoLookup(p.rng))
	}
	p.log = logging.OrDefault(p.log).With("component", "pipeline")
	return p
}

// Busy reports whether a generation is running.
func (p *Pipeline) Busy() bool {
	return p.busy.Load()
}

// Generate runs every step in order and returns the finished lesson.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*analyzer.Lesson, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer p.busy.Store(false)

	sourceLang := firstNonEmpty(req.SourceLanguage, p.cfg.SourceLanguage, analyzer.DefaultLanguage)
	targetLang := firstNonEmpty(req.TargetLanguage, p.cfg.TargetLanguage, "en")
	start := time.Now()

	var (
		src          transcript.Transcript
		analysis     analyzer.Analysis
		vocab        []analyzer.VocabularyEntry
		translations map[string]analyzer.TranslationEntry
		quizData     analyzer.QuizData
		lesson       *analyzer.Lesson
	)

	run := func(i int, step Step, fn func() error) error {
		if err := p.sleep(ctx, p.delay()); err != nil {
			return &StepError{Step: step, Err: err}
		}
		p.notify(StepEvent{Index: i, Name: step, State: StateActive})
		if err := fn(); err != nil {
			p.log.WarnContext(ctx, "generation step failed", slog.String("step", string(step)), slog.Any("error", err))
			return &StepError{Step: step, Err: err}
		}
		p.notify(StepEvent{Index: i, Name: step, State: StateComplete})
		return nil
	}

	stages := []func() error{
		func() error {
			var err error
			src, err = p.extract(ctx, req)
			return err
		},
		func() error {
			analysis = analyzer.Analyze(src.Text, sourceLang)
			return nil
		},
		func() error {
			vocab = analyzer.ExtractVocabulary(src.Text, analysis)
			return nil
		},
		func() error {
			var err error
			translations, err = p.translator.Translate(ctx, vocab, sourceLang, targetLang)
			if err != nil {
				return fmt.Errorf("translate vocabulary: %w", err)
			}
			return nil
		},
		func() error {
			quizData = analyzer.BuildQuizData(vocab)
			return nil
		},
		func() error {
			lesson = analyzer.BuildLesson(src.Text, vocab, translations, quizData, analysis,
				analyzer.WithID(p.newID()),
				analyzer.WithVideoData(analyzer.VideoData{URL: src.URL, VideoID: src.VideoID, Source: string(src.Source)}),
			)
			return nil
		},
	}

	for i, step := range Steps {
		if err := run(i, step, stages[i]); err != nil {
			return nil, err
		}
	}

	p.log.InfoContext(ctx, "lesson generated",
		slog.String("lesson_id", lesson.ID),
		slog.String("source", string(src.Source)),
		slog.Int("words", lesson.Analysis.WordCount),
		slog.Int("vocabulary", len(lesson.Vocabulary)),
		slog.Duration("elapsed", time.Since(start)),
	)
	p.recordLesson(ctx, lesson, time.Since(start))
	return lesson, nil
}

func (p *Pipeline) recordLesson(ctx context.Context, lesson *analyzer.Lesson, elapsed time.Duration) {
	if p.events == nil {
		return
	}
	err := p.events.AppendLessonEvent(ctx, store.LessonEventData{
		LessonID:        lesson.ID,
		Title:           lesson.Title,
		Source:          lesson.VideoData.Source,
		VideoID:         lesson.VideoData.VideoID,
		SourceLanguage:  lesson.SourceLanguage,
		Difficulty:      string(lesson.Difficulty),
		WordCount:       lesson.Analysis.WordCount,
		VocabularyCount: len(lesson.Vocabulary),
		DurationMs:      elapsed.Milliseconds(),
	})
	if err != nil {
		p.log.WarnContext(ctx, "failed to record lesson", slog.Any("error", err))
	}
}

func (p *Pipeline) extract(ctx context.Context, req Request) (transcript.Transcript, error) {
	var src transcript.Transcript
	if strings.TrimSpace(req.Text) != "" {
		src = transcript.Transcript{Text: req.Text, Source: transcript.SourceFile}
	} else {
		var err error
		if src, err = p.resolver.Resolve(ctx, req.Input); err != nil {
			return transcript.Transcript{}, err
		}
	}
	if err := transcript.CheckDuration(src.Text, p.cfg.MaxDurationSeconds); err != nil {
		return transcript.Transcript{}, err
	}
	return src, nil
}

// delay draws a pacing delay uniformly from [MinStepDelay, MaxStepDelay].
func (p *Pipeline) delay() time.Duration {
	lo, hi := p.cfg.MinStepDelay, p.cfg.MaxStepDelay
	if hi <= lo {
		return max(lo, 0)
	}
	return lo + time.Duration(p.rng.IntN(int(hi-lo)+1))
}

func (p *Pipeline) notify(ev StepEvent) {
	if p.observer != nil {
		p.observer(ev)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
