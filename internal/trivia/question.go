// Package trivia turns raw question-bank records into immutable quiz questions.
package trivia

// RawQuestion is one record as delivered by the question bank, before decoding.
// Missing fields are empty strings.
type RawQuestion struct {
	Category         string
	Type             string
	Difficulty       string
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// Question is a decoded question with its answers shuffled once at creation.
// A Question must not be modified after it is created.
type Question struct {
	ID            string
	Text          string
	CorrectAnswer string
	// Answers holds CorrectAnswer exactly once plus every incorrect answer.
	Answers    []string
	Category   string
	Difficulty string
	Type       string
}

// IndexOf returns the position of answer in Answers, or -1.
func (q Question) IndexOf(answer string) int {
	for i, a := range q.Answers {
		if a == answer {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether answer is the correct one.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
