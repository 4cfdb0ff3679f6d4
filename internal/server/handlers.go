package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/capisco/internal/pipeline"
	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/transcript"
)

// LessonRequest is the request body for POST /v1/lessons.
type LessonRequest struct {
	Transcript     string `json:"transcript"`
	VideoURL       string `json:"videoUrl,omitempty"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

// NextRequest is the request body for POST /v1/quiz/next.
type NextRequest struct {
	Topic string `json:"topic"`
	Type  string `json:"type,omitempty"`
}

// ItemResponse describes a served quiz item.
type ItemResponse struct {
	SessionID string    `json:"sessionId"`
	Type      quiz.Type `json:"type"`
	Label     string    `json:"label"`
	Prompt    string    `json:"prompt"`
	Item      ItemView  `json:"item"`
}

// AnswerRequest is the request body for POST /v1/quiz/answer.
type AnswerRequest struct {
	Answer quiz.Answer `json:"answer"`
}

// AnswerResponse carries the verdict and the updated score.
type AnswerResponse struct {
	Verdict quiz.Verdict `json:"verdict"`
	Score   quiz.Score   `json:"score"`
}

// ScoreResponse is returned by GET /v1/quiz/score.
type ScoreResponse struct {
	Score      quiz.Score            `json:"score"`
	Percent    int                   `json:"percent"`
	Stats      progress.SessionStats `json:"stats"`
	Difficulty progress.Difficulty   `json:"difficulty"`
}

// TopicResponse describes one quiz topic.
type TopicResponse struct {
	Topic      string      `json:"topic"`
	Title      string      `json:"title"`
	Vocabulary int         `json:"vocabulary"`
	Phrases    int         `json:"phrases"`
	Types      []quiz.Type `json:"types"`
}

// ReviewResponse is one entry of GET /v1/progress/review.
type ReviewResponse struct {
	Word        string    `json:"word"`
	Topic       string    `json:"topic,omitempty"`
	SuccessRate float64   `json:"successRate"`
	Attempts    int       `json:"attempts"`
	NextReview  time.Time `json:"nextReview"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"busy":   s.pipeline.Busy(),
	})
}

func (s *Server) createLesson(w http.ResponseWriter, r *http.Request) {
	var req LessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Transcript) == "" && strings.TrimSpace(req.VideoURL) == "" {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	lesson, err := s.pipeline.Generate(r.Context(), pipeline.Request{
		Text:           req.Transcript,
		Input:          transcript.Input{VideoURL: req.VideoURL},
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		s.writeLessonError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

func (s *Server) writeLessonError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pipeline.ErrBusy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, transcript.ErrTooLong):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, transcript.ErrNoInput), errors.Is(err, transcript.ErrEmpty):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.ErrorContext(r.Context(), "lesson generation failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	var out []TopicResponse
	for _, ds := range s.session.Catalog().Datasets() {
		out = append(out, TopicResponse{
			Topic:      ds.Topic,
			Title:      ds.Title,
			Vocabulary: len(ds.Vocabulary),
			Phrases:    len(ds.Phrases) + len(ds.Expressions),
			Types:      quiz.SupportedTypes(ds),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) nextItem(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t, err := quiz.ParseType(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := s.session.Next(r.Context(), req.Topic, t)
	if err != nil {
		if errors.Is(err, quiz.ErrUnknownTopic) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, ItemResponse{
		SessionID: s.session.ID(),
		Type:      st.Item.Type(),
		Label:     st.Item.Type().Label(),
		Prompt:    st.Item.Prompt(),
		Item:      itemView(st.Item),
	})
}

func (s *Server) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict, err := s.session.Submit(r.Context(), req.Answer)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AnswerResponse{Verdict: verdict, Score: s.session.Score()})
}

func (s *Server) skipItem(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Skip(r.Context()); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) score(w http.ResponseWriter, r *http.Request) {
	sum := s.session.Summary()
	writeJSON(w, http.StatusOK, ScoreResponse{
		Score:      sum.Score,
		Percent:    sum.Score.Percent(),
		Stats:      sum.Stats,
		Difficulty: sum.Difficulty,
	})
}

func (s *Server) endSession(w http.ResponseWriter, r *http.Request) {
	sum, err := s.session.End(r.Context())
	if err != nil {
		s.log.WarnContext(r.Context(), "session end not fully persisted", slog.Any("error", err))
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) reviewQueue(w http.ResponseWriter, r *http.Request) {
	out := []ReviewResponse{}
	for _, ws := range s.session.ReviewQueue(time.Now()) {
		out = append(out, ReviewResponse{
			Word:        ws.Word,
			Topic:       ws.Topic,
			SuccessRate: ws.SuccessRate(),
			Attempts:    ws.Attempts(),
			NextReview:  ws.NextReview(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoActiveItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrAlreadyGraded), errors.Is(err, session.ErrBusy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrNotSkippable):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
