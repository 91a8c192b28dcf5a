package progress

// MasteryLevel is the four-tier qualitative label derived from era accuracy.
// It is computed on demand, never stored.
type MasteryLevel string

const (
	MasteryBeginner MasteryLevel = "beginner"
	MasteryAverage  MasteryLevel = "average"
	MasteryGood     MasteryLevel = "good"
	MasteryMaster   MasteryLevel = "master"
)

// MasteryFor maps an accuracy percentage to its mastery level.
func MasteryFor(accuracy int) MasteryLevel {
	switch {
	case accuracy >= 90:
		return MasteryMaster
	case accuracy >= 70:
		return MasteryGood
	case accuracy >= 50:
		return MasteryAverage
	default:
		return MasteryBeginner
	}
}

// DisplayName returns the label shown on era cards and the results screen.
func (m MasteryLevel) DisplayName() string {
	switch m {
	case MasteryMaster:
		return "マスター"
	case MasteryGood:
		return "上級"
	case MasteryAverage:
		return "中級"
	default:
		return "初級"
	}
}
