package content

// QuestionType distinguishes the three practice formats.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multipleChoice"
	TypeTossUp         QuestionType = "tossUp"
	TypeFreeResponse   QuestionType = "freeResponse"
)

// Difficulty is the grade band a question is written for.
type Difficulty string

const (
	DifficultyGrade6 Difficulty = "grade6"
	DifficultyGrade7 Difficulty = "grade7"
)

// ChoiceKeys are the answer-choice labels, in NSB convention and display order.
var ChoiceKeys = []string{"W", "X", "Y", "Z"}

// Question is a single quiz item. Immutable once loaded.
type Question struct {
	ID           string       `json:"id"`
	Subject      string       `json:"subject"`
	Subtopic     string       `json:"subtopic"`
	Type         QuestionType `json:"type"`
	QuestionText string       `json:"questionText"`

	// AnswerChoices maps choice key (W/X/Y/Z) to choice text. Present for
	// choice-based types, nil for free response.
	AnswerChoices map[string]string `json:"answerChoices,omitempty"`

	// CorrectAnswer is a choice key for choice types, free text otherwise.
	CorrectAnswer string     `json:"correctAnswer"`
	Difficulty    Difficulty `json:"difficulty"`

	// TopicID links to a Topic for post-answer explanation. Not guaranteed
	// to resolve.
	TopicID string `json:"topicId"`
}

// HasChoices reports whether the question carries answer choices.
func (q Question) HasChoices() bool {
	return len(q.AnswerChoices) > 0
}
