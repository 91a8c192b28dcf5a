package session

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/quiz"
	"github.com/abhisek/rekishi/internal/router"
)

// memDocs is an in-memory Documents implementation for tests.
type memDocs struct {
	blobs map[string]json.RawMessage
}

func newMemDocs() *memDocs {
	return &memDocs{blobs: make(map[string]json.RawMessage)}
}

func (m *memDocs) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	raw, ok := m.blobs[key]
	return raw, ok, nil
}

func (m *memDocs) Put(ctx context.Context, key string, data json.RawMessage) error {
	m.blobs[key] = append(json.RawMessage(nil), data...)
	return nil
}

func (m *memDocs) Delete(ctx context.Context, key string) error {
	delete(m.blobs, key)
	return nil
}

// correctInput returns input the evaluator accepts for q.
func correctInput(q *questions.Question) string {
	if q.IsChoice() {
		return strconv.Itoa(*q.CorrectAnswer)
	}
	return q.Answer
}

func TestSessionEnd_RecordsBeforeNavigating(t *testing.T) {
	ctx := context.Background()
	provider := questions.NewProvider("")
	store := progress.Open(ctx, newMemDocs())

	scr := New(provider, store, "jomon", false)
	sess, err := quiz.New(provider, "jomon", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	scr.Update(sessionInitMsg{Session: sess})

	// Answer two questions, the second one wrong, then end early.
	if _, err := sess.CheckAnswer(correctInput(sess.Current()), time.Now()); err != nil {
		t.Fatal(err)
	}
	sess.NextQuestion()
	if _, err := sess.CheckAnswer("まちがい", time.Now()); err != nil {
		t.Fatal(err)
	}

	_, cmd := scr.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	// The record and the stashed result must both exist before the
	// navigation message is produced, so the results screen can never
	// run its Init ahead of them.
	if got := store.Stats.TotalQuestionsAnswered; got != 2 {
		t.Errorf("TotalQuestionsAnswered = %d, want 2", got)
	}
	var res quiz.Result
	found, err := store.TakeHandoff(ctx, &res)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("no stashed result")
	}
	if res.Score != 1 || res.TotalQuestions != 2 {
		t.Errorf("stashed result = %d/%d, want 1/2", res.Score, res.TotalQuestions)
	}

	if msg := cmd(); msg != nil {
		if _, ok := msg.(router.ReplaceScreenMsg); !ok {
			t.Errorf("navigation message = %T, want router.ReplaceScreenMsg", msg)
		}
	} else {
		t.Error("navigation command produced no message")
	}
}

func TestSessionEnd_NothingAnsweredPops(t *testing.T) {
	ctx := context.Background()
	provider := questions.NewProvider("")
	store := progress.Open(ctx, newMemDocs())

	scr := New(provider, store, "jomon", false)
	sess, err := quiz.New(provider, "jomon", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	scr.Update(sessionInitMsg{Session: sess})

	_, cmd := scr.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("navigation message = %T, want router.PopScreenMsg", cmd())
	}

	if got := store.Stats.TotalQuestionsAnswered; got != 0 {
		t.Errorf("TotalQuestionsAnswered = %d, want 0 for an unanswered session", got)
	}
	var res quiz.Result
	found, err := store.TakeHandoff(ctx, &res)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("unanswered session must not stash a result")
	}
}
