package session

import (
	"time"

	"github.com/abhisek/rekishi/internal/quiz"
)

// sessionInitMsg is sent when the quiz session has been constructed.
type sessionInitMsg struct {
	Session *quiz.Session
	Err     error
}

// timerTickMsg is sent every second to refresh the elapsed-time display.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback is dismissed.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the finish flow (all questions answered
// or quit confirmed).
type sessionEndMsg struct{}
