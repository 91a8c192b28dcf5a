package results

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
	"github.com/abhisek/rekishi/internal/quiz"
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

func TestInit_ConsumesStashedResult(t *testing.T) {
	ctx := context.Background()
	store := progress.Open(ctx, newMemDocs())

	err := store.SaveHandoff(ctx, &quiz.Result{
		Era:            questions.Era{ID: "jomon", Name: "縄文時代"},
		Score:          8,
		TotalQuestions: 10,
		Accuracy:       80,
	})
	if err != nil {
		t.Fatal(err)
	}

	s := New(store, nil)
	s.Update(s.Init()())

	view := s.View(80, 24)
	if !strings.Contains(view, "クイズ終了！") {
		t.Errorf("want finished view, got:\n%s", view)
	}

	var again quiz.Result
	found, err := store.TakeHandoff(ctx, &again)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("stashed result should be consumed on first load")
	}
}

func TestInit_NoStashedResultShowsError(t *testing.T) {
	store := progress.Open(context.Background(), newMemDocs())

	s := New(store, nil)
	s.Update(s.Init()())

	view := s.View(80, 24)
	if strings.Contains(view, "集計中") {
		t.Fatal("screen stuck on the loading view with no stashed result")
	}
	if !strings.Contains(view, "結果が見つかりませんでした") {
		t.Errorf("want missing-result notice, got:\n%s", view)
	}
}
