package trivia

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Batch identifies one generation of questions.
// Question IDs are derived from it, so they never collide with IDs of an earlier batch.
type Batch struct {
	Token      string
	Generation uint64
}

// QuestionID returns the identifier of the question at index within the batch.
func (b Batch) QuestionID(index int) string {
	return fmt.Sprintf("%s-%d-%d", b.Token, b.Generation, index)
}

// Normalizer decodes raw records and shuffles their answers.
// It is not safe for concurrent use.
type Normalizer struct {
	rand       *rand.Rand
	newToken   func() string
	generation uint64
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithRand sets the random source used to shuffle answers.
func WithRand(r *rand.Rand) NormalizerOption {
	return func(n *Normalizer) {
		n.rand = r
	}
}

// WithTokenFunc sets the function generating batch tokens.
func WithTokenFunc(f func() string) NormalizerOption {
	return func(n *Normalizer) {
		n.newToken = f
	}
}

func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		newToken: newBatchToken,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// newBatchToken returns a time-ordered UUID.
func newBatchToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		slog.Default().Warn("failed to generate a UUIDv7, falling back to a random UUID",
			"error", err,
		)
		return uuid.NewString()
	}
	return id.String()
}

// NewBatch starts a new generation of questions.
func (n *Normalizer) NewBatch() Batch {
	n.generation++
	return Batch{
		Token:      n.newToken(),
		Generation: n.generation,
	}
}

// Normalize converts the raw record at index of batch into a Question.
func (n *Normalizer) Normalize(batch Batch, index int, raw RawQuestion) Question {
	answers := make([]string, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		answers = append(answers, decode(incorrect))
	}
	correct := decode(raw.CorrectAnswer)
	answers = append(answers, correct)
	shuffle(n.rand, answers)

	return Question{
		ID:            batch.QuestionID(index),
		Text:          decode(raw.Question),
		CorrectAnswer: correct,
		Answers:       answers,
		Category:      decode(raw.Category),
		Difficulty:    decode(raw.Difficulty),
		Type:          decode(raw.Type),
	}
}

// NormalizeAll converts every record into a Question under a new batch, keeping their order.
func (n *Normalizer) NormalizeAll(raws []RawQuestion) []Question {
	batch := n.NewBatch()
	questions := make([]Question, 0, len(raws))
	for i, raw := range raws {
		questions = append(questions, n.Normalize(batch, i, raw))
	}
	return questions
}

// decode resolves HTML character references such as &quot; or &#039;.
func decode(s string) string {
	return html.UnescapeString(s)
}

// shuffle permutes answers in place with Fisher-Yates.
func shuffle(r *rand.Rand, answers []string) {
	for k := len(answers) - 1; k > 0; k-- {
		j := r.Intn(k + 1)
		answers[k], answers[j] = answers[j], answers[k]
	}
}
