package sound

// Cue names a sound effect the UI layer may play after an answer. Selection
// is pure policy; playback belongs to whatever audio collaborator the front
// end wires in (the terminal UI settles for a bell).
type Cue string

const (
	CueNone    Cue = ""
	CueCorrect Cue = "correct"
	CueStreak  Cue = "streak"
	CuePerfect Cue = "perfect"
)

// Streak lengths at which the correct-answer cue escalates. Thresholds are
// absolute in-session streak counts; only a wrong answer resets them.
const (
	StreakCueThreshold  = 10
	PerfectCueThreshold = 20
)

// ForAnswer selects the cue for an evaluated answer given the streak length
// after the answer was counted. Wrong answers are silent.
func ForAnswer(correct bool, consecutiveCorrect int) Cue {
	if !correct {
		return CueNone
	}
	switch {
	case consecutiveCorrect >= PerfectCueThreshold:
		return CuePerfect
	case consecutiveCorrect >= StreakCueThreshold:
		return CueStreak
	default:
		return CueCorrect
	}
}
