package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/quiz"
	"github.com/abhisek/rekishi/internal/router"
	"github.com/abhisek/rekishi/internal/screen"
	"github.com/abhisek/rekishi/internal/screens/results"
	"github.com/abhisek/rekishi/internal/sound"
	"github.com/abhisek/rekishi/internal/ui/components"
	"github.com/abhisek/rekishi/internal/ui/layout"
)

// SessionScreen drives one quiz play-through. All state transitions go
// through explicit calls on the quiz session; this screen only translates
// key events and renders.
type SessionScreen struct {
	provider *questions.Provider
	store    *progress.Store
	eraID    string
	review   bool

	sess       *quiz.Session
	input      components.TextInput
	mcSelected int
	elapsed    time.Duration

	showingFeedback    bool
	showingQuitConfirm bool
	lastAnswer         quiz.UserAnswer
	cue                sound.Cue
	inputErr           string
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the given era. With review set, the
// session draws from the era's wrong-question set instead of the full bank.
func New(provider *questions.Provider, store *progress.Store, eraID string, review bool) *SessionScreen {
	return &SessionScreen{
		provider: provider,
		store:    store,
		eraID:    eraID,
		review:   review,
		input:    components.NewTextInput("答えを入力...", 40),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
		tickCmd(),
	)
}

func (s *SessionScreen) Title() string {
	if s.sess != nil {
		if s.review {
			return s.sess.Era.Name + " · 復習"
		}
		return s.sess.Era.Name
	}
	return "クイズ"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "やめる"},
			{Key: "N", Description: "続ける"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "次へ"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "回答"},
		{Key: "Esc", Description: "中断"},
	}
}

// initSession constructs the quiz session off the Update loop.
func (s *SessionScreen) initSession() tea.Cmd {
	provider, store, eraID, review := s.provider, s.store, s.eraID, s.review
	return func() tea.Msg {
		var (
			sess *quiz.Session
			err  error
		)
		if review {
			sess, err = quiz.NewReview(provider, eraID, store.WrongQuestionsFor(eraID), time.Now())
		} else {
			sess, err = quiz.New(provider, eraID, time.Now())
		}
		return sessionInitMsg{Session: sess, Err: err}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sess = msg.Session
		return s, nil

	case timerTickMsg:
		if s.sess != nil && !s.sess.Finished() && !s.showingQuitConfirm {
			s.elapsed += time.Second
		}
		return s, tickCmd()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input while answering free text.
	if s.answeringFreeText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// answeringFreeText reports whether key events belong to the text input.
func (s *SessionScreen) answeringFreeText() bool {
	return s.sess != nil && !s.sess.Finished() &&
		!s.showingFeedback && !s.showingQuitConfirm &&
		s.sess.Current() != nil && !s.sess.Current().IsChoice()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.sess == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	q := s.sess.Current()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	if q.IsChoice() {
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Choices) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if s.mcSelected < len(q.Choices)-1 {
				s.mcSelected++
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer evaluates the current input through the state machine.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.sess.Current()
	if q == nil {
		return s, nil
	}

	var raw string
	if q.IsChoice() {
		raw = strconv.Itoa(s.mcSelected)
	} else {
		raw = s.input.Value()
	}

	answer, err := s.sess.CheckAnswer(raw, time.Now())
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyAnswer) {
			s.inputErr = "回答を入力してください"
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.inputErr = ""
	s.lastAnswer = answer
	s.cue = sound.CueNone
	if s.store.Settings.SoundEnabled {
		s.cue = sound.ForAnswer(answer.IsCorrect, s.sess.ConsecutiveCorrect())
	}
	if !q.IsChoice() {
		s.input.Submit(answer.IsCorrect)
	}
	s.showingFeedback = true

	return s, nil
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	if !s.sess.NextQuestion() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.mcSelected = 0
	s.input = components.NewTextInput("答えを入力...", 40)
	return s, s.input.Init()
}

// handleSessionEnd folds the finished session into the progress store and
// swaps in the results screen.
func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.sess == nil || len(s.sess.Answers()) == 0 {
		// Nothing was answered, nothing to record.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	result := s.sess.Result(time.Now())

	// Record before navigating so the results screen finds the stashed
	// result on Init, and so the store is only written from this goroutine.
	if err := s.recordResult(result); err != nil {
		s.errMsg = "結果の保存に失敗しました: " + err.Error()
		return s, nil
	}

	provider, store, eraID := s.provider, s.store, s.eraID
	restart := func(review bool) screen.Screen {
		return New(provider, store, eraID, review)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(store, restart),
		}
	}
}

// recordResult runs the aggregation: lifetime stats, daily bucket, era
// stats, wrong-question sets. Review sessions additionally clear every
// wrong question that was answered correctly this time. The result is
// stashed for the results screen to pick up.
func (s *SessionScreen) recordResult(result *quiz.Result) error {
	ctx := context.Background()

	if err := s.store.Record(ctx, result.SessionResult(), time.Now()); err != nil {
		return err
	}

	if result.Review {
		for _, a := range result.Answers {
			if a.IsCorrect {
				if err := s.store.ClearWrongQuestion(ctx, result.Era.ID, a.Question.ID); err != nil {
					return err
				}
			}
		}
	}

	return s.store.SaveHandoff(ctx, result)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
