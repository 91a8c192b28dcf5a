package questions

import "math/rand/v2"

// SelectQuestions returns min(count, len(all)) questions drawn without
// replacement, each equally likely in any position. The input slice is not
// modified; every call reshuffles, so repeated sessions see fresh orderings.
func SelectQuestions(all []Question, count int) []Question {
	shuffled := make([]Question, len(all))
	copy(shuffled, all)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
