// Package session holds the state of one quiz: the current batch of questions
// and the answers revealed so far.
package session

import (
	"log/slog"
	"math"

	"github.com/at-ishikawa/quizflow/internal/trivia"
)

// State is the answer state of a single question.
type State int

const (
	StateUnanswered State = iota
	StateRevealed
)

func (s State) String() string {
	switch s {
	case StateUnanswered:
		return "unanswered"
	case StateRevealed:
		return "revealed"
	}
	return "unknown"
}

// AnswerRecord is the final answer to a question.
// It is created on the first reveal and never changes afterwards.
type AnswerRecord struct {
	Selected  string
	IsCorrect bool
	Revealed  bool
}

// Stats is derived from the current batch and its answer records.
type Stats struct {
	TotalQuestions  int
	RevealedCount   int
	CorrectCount    int
	WrongCount      int
	AccuracyPercent int
}

// Session is not safe for concurrent use.
type Session struct {
	questions []trivia.Question
	positions map[string]int
	records   map[string]AnswerRecord
	version   uint64
}

func New() *Session {
	return &Session{
		positions: make(map[string]int),
		records:   make(map[string]AnswerRecord),
	}
}

// Start replaces the batch with questions and discards every answer record.
func (s *Session) Start(questions []trivia.Question) {
	s.questions = append([]trivia.Question(nil), questions...)
	s.positions = make(map[string]int, len(questions))
	for i, q := range s.questions {
		if _, ok := s.positions[q.ID]; !ok {
			s.positions[q.ID] = i
		}
	}
	s.records = make(map[string]AnswerRecord)
	s.version++

	slog.Default().Debug("session started",
		"questions", len(s.questions),
		"version", s.version,
	)
}

// Reveal records selected as the answer to the question with id.
// Only the first reveal of a question counts; later ones and unknown ids are ignored.
// It reports whether a record was created.
func (s *Session) Reveal(id string, selected string) bool {
	q, ok := s.Question(id)
	if !ok {
		slog.Default().Debug("ignored a reveal for an unknown question", "id", id)
		return false
	}
	if _, ok := s.records[id]; ok {
		return false
	}

	s.records[id] = AnswerRecord{
		Selected:  selected,
		IsCorrect: q.IsCorrect(selected),
		Revealed:  true,
	}
	return true
}

func (s *Session) Stats() Stats {
	stats := Stats{
		TotalQuestions: len(s.questions),
		RevealedCount:  len(s.records),
	}
	for _, record := range s.records {
		if record.IsCorrect {
			stats.CorrectCount++
		}
	}
	stats.WrongCount = max(0, stats.RevealedCount-stats.CorrectCount)
	if stats.RevealedCount > 0 {
		stats.AccuracyPercent = int(math.Round(100 * float64(stats.CorrectCount) / float64(stats.RevealedCount)))
	}
	return stats
}

// Questions returns the current batch in order.
func (s *Session) Questions() []trivia.Question {
	return append([]trivia.Question(nil), s.questions...)
}

func (s *Session) Question(id string) (trivia.Question, bool) {
	i, ok := s.positions[id]
	if !ok {
		return trivia.Question{}, false
	}
	return s.questions[i], true
}

func (s *Session) Record(id string) (AnswerRecord, bool) {
	record, ok := s.records[id]
	return record, ok
}

func (s *Session) State(id string) State {
	if _, ok := s.records[id]; ok {
		return StateRevealed
	}
	return StateUnanswered
}

// Version is incremented by every Start.
// Anything cached by question id should be dropped when it changes.
func (s *Session) Version() uint64 {
	return s.version
}
