package session

import (
	"github.com/abhisek/capisco/internal/quiz"
	sess "github.com/abhisek/capisco/internal/session"
)

// itemReadyMsg is sent when the next item has been generated. A nil State
// with no error means the topic cannot serve the requested type.
type itemReadyMsg struct {
	State *quiz.ItemState
	Err   error
}

// answerGradedMsg is sent once the session has graded an answer.
type answerGradedMsg struct {
	Verdict quiz.Verdict
	Err     error
}

// skippedMsg is sent after an audio item was skipped.
type skippedMsg struct {
	Err error
}

// sessionEndedMsg carries the summary of the finished session.
type sessionEndedMsg struct {
	Summary sess.Summary
	Err     error
}
