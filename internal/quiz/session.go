package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
)

// QuestionsPerSession is how many questions a full session serves, fewer
// when the era's bank is smaller.
const QuestionsPerSession = 20

var (
	// ErrUnknownEra is returned when a session is requested for an era id
	// that is not in the catalog.
	ErrUnknownEra = errors.New("unknown era")

	// ErrEmptyAnswer is returned when a free-text answer is submitted blank.
	// The question stays unanswered and may be resubmitted.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNoWrongQuestions is returned when a review session is requested for
	// an era with an empty wrong-question set.
	ErrNoWrongQuestions = errors.New("no wrong questions to review")
)

// Phase is the session state-machine phase.
type Phase int

const (
	// PhaseAwaitingAnswer means the current question is displayed and
	// unanswered.
	PhaseAwaitingAnswer Phase = iota

	// PhaseAnswered means the current question has been evaluated and
	// feedback may be shown; NextQuestion moves on.
	PhaseAnswered

	// PhaseFinished is terminal. A new session must be constructed to play
	// again.
	PhaseFinished
)

// UserAnswer records one evaluated answer. Appended once per question,
// never mutated after.
type UserAnswer struct {
	Question  questions.Question `json:"question"`
	RawInput  string             `json:"userAnswer"`
	IsCorrect bool               `json:"isCorrect"`

	// TimeSpentMs is cumulative milliseconds since session start at the
	// moment of answering, not per-question time.
	TimeSpentMs int64 `json:"timeSpent"`
}

// Session is one play-through of an era: question sequencing, answer
// evaluation, scoring, and in-session streak tracking. It is ephemeral and
// holds no reference to any UI or storage layer.
type Session struct {
	ID        string
	Era       questions.Era
	Questions []questions.Question
	Review    bool

	index              int
	answers            []UserAnswer
	score              int
	consecutiveCorrect int
	startTime          time.Time
	phase              Phase
}

// New starts a session for eraID: resolves the era, selects a shuffled
// subset of its bank, and resets score, streak, and position. Fails only
// when the era id is unknown.
func New(provider *questions.Provider, eraID string, now time.Time) (*Session, error) {
	era, ok := provider.Era(eraID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEra, eraID)
	}

	bank := provider.LoadQuestions(eraID)
	selected := questions.SelectQuestions(bank.Questions, QuestionsPerSession)

	return newSession(era, selected, false, now), nil
}

// NewReview starts a review session over an era's wrong-question set. The
// question order is reshuffled like a normal session; questions whose ids
// are no longer in the bank are skipped.
func NewReview(provider *questions.Provider, eraID string, wrongIDs progress.QuestionSet, now time.Time) (*Session, error) {
	era, ok := provider.Era(eraID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEra, eraID)
	}

	bank := provider.LoadQuestions(eraID)
	var pool []questions.Question
	for _, q := range bank.Questions {
		if wrongIDs.Has(q.ID) {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: era %q", ErrNoWrongQuestions, eraID)
	}

	selected := questions.SelectQuestions(pool, len(pool))
	return newSession(era, selected, true, now), nil
}

func newSession(era questions.Era, selected []questions.Question, review bool, now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Era:       era,
		Questions: selected,
		Review:    review,
		answers:   make([]UserAnswer, 0, len(selected)),
		startTime: now,
		phase:     PhaseAwaitingAnswer,
	}
}

// Current returns the question on display, nil once the session is finished.
func (s *Session) Current() *questions.Question {
	if s.index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// ConsecutiveCorrect returns the current in-session streak.
func (s *Session) ConsecutiveCorrect() int {
	return s.consecutiveCorrect
}

// CurrentPhase returns the state-machine phase.
func (s *Session) CurrentPhase() Phase {
	return s.phase
}

// Answers returns the evaluated answers so far, in question order.
func (s *Session) Answers() []UserAnswer {
	return s.answers
}

// CheckAnswer evaluates input against the current question and appends the
// answer record. Calling it again on an already-answered question is a
// no-op returning the recorded answer, so double submissions cannot change
// the score or streak. Blank free-text input returns ErrEmptyAnswer with no
// state change.
func (s *Session) CheckAnswer(input string, now time.Time) (UserAnswer, error) {
	if s.phase == PhaseFinished {
		return UserAnswer{}, errors.New("session already finished")
	}
	if s.phase == PhaseAnswered {
		return s.answers[len(s.answers)-1], nil
	}

	q := s.Current()
	correct, err := Evaluate(q, input)
	if err != nil {
		return UserAnswer{}, err
	}

	if correct {
		s.score++
		s.consecutiveCorrect++
	} else {
		s.consecutiveCorrect = 0
	}

	answer := UserAnswer{
		Question:    *q,
		RawInput:    input,
		IsCorrect:   correct,
		TimeSpentMs: now.Sub(s.startTime).Milliseconds(),
	}
	s.answers = append(s.answers, answer)
	s.phase = PhaseAnswered

	return answer, nil
}

// NextQuestion advances past an answered question. It returns false when no
// questions remain, in which case the session transitions to Finished.
func (s *Session) NextQuestion() bool {
	if s.phase != PhaseAnswered {
		return s.phase != PhaseFinished
	}

	s.index++
	if s.index >= len(s.Questions) {
		s.phase = PhaseFinished
		return false
	}
	s.phase = PhaseAwaitingAnswer
	return true
}

// Finished reports whether the session reached its terminal phase.
func (s *Session) Finished() bool {
	return s.phase == PhaseFinished
}
