package questions

// Era describes one historical period acting as a question-bank partition.
type Era struct {
	// ID is the stable identifier used in file names and progress keys.
	ID string `json:"id"`

	// Name is the display name, e.g. "縄文時代".
	Name string `json:"name"`

	// Period is the human-readable date range.
	Period string `json:"period"`

	// Description is a one-line characterization of the era.
	Description string `json:"description"`

	// Color is the accent color hex string used by the era card.
	Color string `json:"color"`

	// QuestionCount is the advertised size of the era's question bank.
	QuestionCount int `json:"questionCount"`

	// Difficulty is the advertised easy/medium/hard split of the bank.
	Difficulty DifficultySplit `json:"difficulty"`
}

// DifficultySplit counts questions per difficulty band.
type DifficultySplit struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Catalog is the era catalog document shape.
type Catalog struct {
	Eras []Era `json:"eras"`
}

// Question is a single quiz question, immutable once loaded.
//
// A question is multiple-choice when Choices is non-empty, in which case
// CorrectAnswer is the index of the right option. Free-text questions leave
// Choices empty and are evaluated against Answer. Answer is the canonical
// answer text in both cases.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Choices       []string `json:"choices,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Answer        string   `json:"answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
}

// IsChoice reports whether the question is answered by picking an option.
func (q *Question) IsChoice() bool {
	return len(q.Choices) > 0
}

// DisplayAnswer returns the correct answer as shown to the player. For
// choice questions this is the text of the correct option.
func (q *Question) DisplayAnswer() string {
	if q.IsChoice() && q.CorrectAnswer != nil && *q.CorrectAnswer >= 0 && *q.CorrectAnswer < len(q.Choices) {
		return q.Choices[*q.CorrectAnswer]
	}
	return q.Answer
}

// Bank is the per-era question bank document shape.
type Bank struct {
	Era       string       `json:"era"`
	Metadata  BankMetadata `json:"metadata"`
	Questions []Question   `json:"questions"`
}

// BankMetadata describes a question bank.
type BankMetadata struct {
	TotalQuestions int             `json:"totalQuestions"`
	Difficulty     DifficultySplit `json:"difficulty"`
	LastUpdated    string          `json:"lastUpdated"`
}
