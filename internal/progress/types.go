package progress

// Theme names the two UI color palettes.
type Theme string

const (
	ThemeOcean Theme = "ocean"
	ThemeNight Theme = "night"
)

// Settings holds user preferences, persisted whole on any change.
type Settings struct {
	Theme        Theme   `json:"theme"`
	SoundEnabled bool    `json:"soundEnabled"`
	BGMVolume    float64 `json:"bgmVolume"`
	EffectVolume float64 `json:"effectVolume"`
}

// DefaultSettings returns the settings applied when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:        ThemeOcean,
		SoundEnabled: true,
		BGMVolume:    0.3,
		EffectVolume: 0.7,
	}
}

// Stats is the lifetime aggregate, mutated only when a session is recorded.
type Stats struct {
	TotalQuestionsAnswered int `json:"totalQuestionsAnswered"`
	CorrectAnswers         int `json:"correctAnswers"`
	OverallAccuracy        int `json:"overallAccuracy"`
	StudyStreak            int `json:"studyStreak"`
	TotalStudyTimeMinutes  int `json:"totalStudyTimeMinutes"`
}

// DefaultStats returns the zero lifetime aggregate.
func DefaultStats() Stats {
	return Stats{}
}

// DayStats is one calendar day's activity bucket.
type DayStats struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	StudyTimeMinutes  int `json:"studyTimeMinutes"`
}

// EraStats tracks cumulative performance within one era, including the
// era-local view of its wrong-question set.
type EraStats struct {
	TotalQuestions int         `json:"totalQuestions"`
	CorrectAnswers int         `json:"correctAnswers"`
	WrongQuestions QuestionSet `json:"wrongQuestions"`
}

// Accuracy returns the era's cumulative accuracy as a rounded percentage.
func (e EraStats) Accuracy() int {
	return roundPercent(e.CorrectAnswers, e.TotalQuestions)
}

// Progress is the append-only study history.
//
// WrongQuestions is the global per-era view of missed questions; each
// EraStats entry carries its own copy. Writes go through a single helper so
// the two views cannot diverge.
type Progress struct {
	DailyStats           map[string]DayStats    `json:"dailyStats"`
	EraStats             map[string]EraStats    `json:"eraStats"`
	WrongQuestions       map[string]QuestionSet `json:"wrongQuestions"`
	LastStudyDate        string                 `json:"lastStudyDate,omitempty"`
	ConsecutiveStudyDays int                    `json:"consecutiveStudyDays"`
	TotalStudySessions   int                    `json:"totalStudySessions"`
}

// DefaultProgress returns an empty history with initialized maps.
func DefaultProgress() Progress {
	return Progress{
		DailyStats:     make(map[string]DayStats),
		EraStats:       make(map[string]EraStats),
		WrongQuestions: make(map[string]QuestionSet),
	}
}

// roundPercent computes round(num/den*100), 0 when den is 0.
func roundPercent(num, den int) int {
	if den == 0 {
		return 0
	}
	// Round half up without importing math: works for non-negative counters.
	return (num*100*2 + den) / (den * 2)
}
