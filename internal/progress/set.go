package progress

import (
	"encoding/json"
	"sort"
)

// QuestionSet is a set of question IDs. Business logic sees set semantics;
// the persisted representation is a sorted JSON array, produced and consumed
// only at the storage boundary.
type QuestionSet map[string]struct{}

// NewQuestionSet builds a set from the given IDs.
func NewQuestionSet(ids ...string) QuestionSet {
	s := make(QuestionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id. Adding an existing id is a no-op.
func (s QuestionSet) Add(id string) {
	s[id] = struct{}{}
}

// Remove deletes id. Removing an absent id is a no-op.
func (s QuestionSet) Remove(id string) {
	delete(s, id)
}

// Has reports whether id is in the set.
func (s QuestionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the set size.
func (s QuestionSet) Len() int {
	return len(s)
}

// IDs returns the members in sorted order.
func (s QuestionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equal reports order-independent equality with other.
func (s QuestionSet) Equal(other QuestionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (s QuestionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes a persisted array back into a set, dropping
// duplicates.
func (s *QuestionSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewQuestionSet(ids...)
	return nil
}
