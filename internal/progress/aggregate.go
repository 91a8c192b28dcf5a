package progress

import (
	"context"
	"math"
	"time"
)

// DateLayout is the calendar-day key format for daily stats and the
// study-streak bookkeeping.
const DateLayout = "2006-01-02"

// SessionResult is the slice of a finished quiz session the aggregator
// consumes. The caller builds it once from the session's QuizResult.
type SessionResult struct {
	EraID            string
	Score            int
	TotalQuestions   int
	TimeSpentSeconds int
	WrongQuestionIDs []string
}

// Record folds one finished session into stats and progress, then persists
// both documents. Call it exactly once per finished session. now supplies
// the local calendar date for daily buckets and streak arithmetic.
func (s *Store) Record(ctx context.Context, result SessionResult, now time.Time) error {
	minutes := result.TimeSpentSeconds / 60
	today := now.Format(DateLayout)

	// Lifetime stats.
	s.Stats.TotalQuestionsAnswered += result.TotalQuestions
	s.Stats.CorrectAnswers += result.Score
	s.Stats.OverallAccuracy = roundPercent(s.Stats.CorrectAnswers, s.Stats.TotalQuestionsAnswered)
	s.Stats.TotalStudyTimeMinutes += minutes

	// Study-streak days: multiple sessions on one day count once; an
	// adjacent day extends the streak; any gap restarts it.
	switch {
	case s.Progress.LastStudyDate == "":
		s.Progress.ConsecutiveStudyDays = 1
		s.Progress.LastStudyDate = today
	case s.Progress.LastStudyDate == today:
		// No change.
	case daysBetween(s.Progress.LastStudyDate, today) == 1:
		s.Progress.ConsecutiveStudyDays++
		s.Progress.LastStudyDate = today
	default:
		s.Progress.ConsecutiveStudyDays = 1
		s.Progress.LastStudyDate = today
	}
	s.Stats.StudyStreak = s.Progress.ConsecutiveStudyDays

	// Daily bucket.
	day := s.Progress.DailyStats[today]
	day.QuestionsAnswered += result.TotalQuestions
	day.CorrectAnswers += result.Score
	day.StudyTimeMinutes += minutes
	s.Progress.DailyStats[today] = day

	// Era stats.
	es := s.Progress.EraStats[result.EraID]
	if es.WrongQuestions == nil {
		es.WrongQuestions = NewQuestionSet()
	}
	es.TotalQuestions += result.TotalQuestions
	es.CorrectAnswers += result.Score
	s.Progress.EraStats[result.EraID] = es

	for _, id := range result.WrongQuestionIDs {
		s.addWrongQuestion(result.EraID, id)
	}

	s.Progress.TotalStudySessions++

	if err := s.SaveStats(ctx); err != nil {
		return err
	}
	return s.SaveProgress(ctx)
}

// addWrongQuestion writes the id into both the era-local and the global
// wrong-question sets. This is the only writer, so the two views stay
// consistent.
func (s *Store) addWrongQuestion(eraID, questionID string) {
	es := s.Progress.EraStats[eraID]
	if es.WrongQuestions == nil {
		es.WrongQuestions = NewQuestionSet()
	}
	es.WrongQuestions.Add(questionID)
	s.Progress.EraStats[eraID] = es

	set, ok := s.Progress.WrongQuestions[eraID]
	if !ok {
		set = NewQuestionSet()
		s.Progress.WrongQuestions[eraID] = set
	}
	set.Add(questionID)
}

// ClearWrongQuestion removes the id from both wrong-question sets and
// persists. Used when a previously-missed question is answered correctly
// during a review session. Idempotent when the id is absent.
func (s *Store) ClearWrongQuestion(ctx context.Context, eraID, questionID string) error {
	if es, ok := s.Progress.EraStats[eraID]; ok && es.WrongQuestions != nil {
		es.WrongQuestions.Remove(questionID)
		s.Progress.EraStats[eraID] = es
	}
	if set, ok := s.Progress.WrongQuestions[eraID]; ok {
		set.Remove(questionID)
	}
	return s.SaveProgress(ctx)
}

// daysBetween returns the whole calendar days from one date string to
// another. Unparseable dates count as an arbitrarily large gap, which
// restarts the streak rather than inflating it.
func daysBetween(from, to string) int {
	fromDay, err := time.Parse(DateLayout, from)
	if err != nil {
		return math.MaxInt
	}
	toDay, err := time.Parse(DateLayout, to)
	if err != nil {
		return math.MaxInt
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}
