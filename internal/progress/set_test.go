package progress

import (
	"encoding/json"
	"testing"
)

func TestQuestionSet_Basics(t *testing.T) {
	s := NewQuestionSet()

	s.Add("nara_003")
	s.Add("nara_001")
	s.Add("nara_001") // duplicate
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if !s.Has("nara_001") || !s.Has("nara_003") {
		t.Error("added ids missing from set")
	}

	s.Remove("nara_001")
	s.Remove("absent") // no-op
	if s.Has("nara_001") {
		t.Error("removed id still present")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d after remove, want 1", s.Len())
	}
}

func TestQuestionSet_IDsSorted(t *testing.T) {
	s := NewQuestionSet("heian_010", "heian_002", "heian_001")

	ids := s.IDs()
	want := []string{"heian_001", "heian_002", "heian_010"}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", ids, want)
		}
	}
}

func TestQuestionSet_Equal(t *testing.T) {
	a := NewQuestionSet("x", "y")
	b := NewQuestionSet("y", "x")
	c := NewQuestionSet("x")

	if !a.Equal(b) {
		t.Error("order-independent sets should be equal")
	}
	if a.Equal(c) {
		t.Error("sets of different size should not be equal")
	}
}

func TestQuestionSet_JSONIsSortedArray(t *testing.T) {
	s := NewQuestionSet("b", "a", "c")

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(raw) != `["a","b","c"]` {
		t.Errorf("marshal = %s, want sorted array", raw)
	}

	var back QuestionSet
	if err := json.Unmarshal([]byte(`["a","a","b"]`), &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Len() != 2 || !back.Has("a") || !back.Has("b") {
		t.Errorf("unmarshal = %v, want {a b}", back.IDs())
	}
}
