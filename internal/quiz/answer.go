package quiz

import (
	"strconv"
	"strings"

	"github.com/abhisek/rekishi/internal/questions"
)

// Evaluate compares the user's raw input against the question's answer.
//
// Choice questions: input is the chosen index as a string, correct iff it
// equals the stored correct index.
//
// Free-text questions: case-insensitive, whitespace-trimmed bidirectional
// substring containment. "幕府" matches canonical "鎌倉幕府", and so does
// "江戸幕府". Deliberately lenient, wrong superstrings included; do not
// tighten without reworking the question banks.
func Evaluate(q *questions.Question, input string) (bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false, ErrEmptyAnswer
	}

	if q.IsChoice() {
		idx, err := strconv.Atoi(input)
		if err != nil || q.CorrectAnswer == nil {
			return false, nil
		}
		return idx == *q.CorrectAnswer, nil
	}

	user := strings.ToLower(input)
	canonical := strings.ToLower(strings.TrimSpace(q.Answer))
	return strings.Contains(canonical, user) || strings.Contains(user, canonical), nil
}
