package quiz

import (
	"time"

	"github.com/abhisek/rekishi/internal/progress"
	"github.com/abhisek/rekishi/internal/questions"
)

// Result is the record a finished session hands to the results aggregator
// and the results screen. Produced once, then discarded.
type Result struct {
	Era              questions.Era `json:"era"`
	Review           bool          `json:"review"`
	Score            int           `json:"score"`
	TotalQuestions   int           `json:"totalQuestions"`
	Accuracy         int           `json:"accuracy"`
	TimeSpentSeconds int           `json:"timeSpent"`
	Answers          []UserAnswer  `json:"answers"`
	WrongAnswers     []UserAnswer  `json:"wrongAnswers"`
}

// Result computes the session's final record. Valid once the session has
// reached its terminal phase; totalQuestions is the number of questions
// actually presented.
func (s *Session) Result(now time.Time) *Result {
	total := len(s.answers)
	accuracy := 0
	if total > 0 {
		accuracy = int(float64(s.score)/float64(total)*100 + 0.5)
	}

	var wrong []UserAnswer
	for _, a := range s.answers {
		if !a.IsCorrect {
			wrong = append(wrong, a)
		}
	}

	return &Result{
		Era:              s.Era,
		Review:           s.Review,
		Score:            s.score,
		TotalQuestions:   total,
		Accuracy:         accuracy,
		TimeSpentSeconds: int(now.Sub(s.startTime).Seconds()),
		Answers:          s.answers,
		WrongAnswers:     wrong,
	}
}

// SessionResult converts the result into the aggregator's input record.
func (r *Result) SessionResult() progress.SessionResult {
	wrongIDs := make([]string, 0, len(r.WrongAnswers))
	for _, a := range r.WrongAnswers {
		wrongIDs = append(wrongIDs, a.Question.ID)
	}
	return progress.SessionResult{
		EraID:            r.Era.ID,
		Score:            r.Score,
		TotalQuestions:   r.TotalQuestions,
		TimeSpentSeconds: r.TimeSpentSeconds,
		WrongQuestionIDs: wrongIDs,
	}
}
