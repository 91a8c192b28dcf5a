package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/rekishi/internal/questions"
)

func choiceQuestion(correct int) *questions.Question {
	return &questions.Question{
		ID:            "q1",
		Question:      "縄文時代の主な生活様式は？",
		Choices:       []string{"稲作", "狩猟採集", "牧畜", "交易"},
		CorrectAnswer: &correct,
	}
}

func TestEvaluate_Choice(t *testing.T) {
	q := choiceQuestion(1)

	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{" 1 ", true},
		{"0", false},
		{"2", false},
		{"3", false},
		{"abc", false},
	}

	for _, tc := range tests {
		got, err := Evaluate(q, tc.input)
		if err != nil {
			t.Fatalf("Evaluate(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestEvaluate_ChoiceWithoutCorrectIndex(t *testing.T) {
	q := &questions.Question{
		ID:       "q2",
		Question: "broken",
		Choices:  []string{"a", "b"},
	}

	got, err := Evaluate(q, "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("choice question without a correct index should never match")
	}
}

func TestEvaluate_FreeText(t *testing.T) {
	q := &questions.Question{
		ID:       "q3",
		Question: "1192年に鎌倉に開かれた武家政権は？",
		Answer:   "鎌倉幕府",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"鎌倉幕府", true},
		{"  鎌倉幕府  ", true},
		// Substring of the canonical answer.
		{"幕府", true},
		{"鎌倉", true},
		// Superstring containing the canonical answer.
		{"鎌倉幕府です", true},
		// Shares characters but neither contains the other.
		{"江戸幕府", false},
		{"室町", false},
	}

	for _, tc := range tests {
		got, err := Evaluate(q, tc.input)
		if err != nil {
			t.Fatalf("Evaluate(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestEvaluate_FreeTextCaseInsensitive(t *testing.T) {
	q := &questions.Question{
		ID:       "q4",
		Question: "romaji answer",
		Answer:   "Himiko",
	}

	for _, input := range []string{"himiko", "HIMIKO", "Himiko"} {
		got, err := Evaluate(q, input)
		if err != nil {
			t.Fatalf("Evaluate(%q) unexpected error: %v", input, err)
		}
		if !got {
			t.Errorf("Evaluate(%q) = false, want true", input)
		}
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	q := &questions.Question{ID: "q5", Question: "x", Answer: "y"}

	for _, input := range []string{"", "   ", "\t"} {
		_, err := Evaluate(q, input)
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("Evaluate(%q) error = %v, want ErrEmptyAnswer", input, err)
		}
	}
}
