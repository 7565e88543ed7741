// Package quiz connects the question bank to a quiz session.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/quizflow/internal/config"
	"github.com/at-ishikawa/quizflow/internal/opentdb"
	"github.com/at-ishikawa/quizflow/internal/session"
	"github.com/at-ishikawa/quizflow/internal/trivia"
)

//go:generate mockgen -source=service.go -destination=../mocks/quiz/mock_service.go -package=mock_quiz

type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, query opentdb.Query) ([]opentdb.Result, error)
}

// Settings are the filters used for the next batch.
type Settings struct {
	Category   int
	Amount     int
	Difficulty string
	Type       string
}

func (s Settings) query() opentdb.Query {
	return opentdb.Query{
		Amount:     s.Amount,
		Category:   s.Category,
		Difficulty: s.Difficulty,
		Type:       s.Type,
	}
}

// Service is not safe for concurrent use.
type Service struct {
	fetcher    QuestionFetcher
	normalizer *trivia.Normalizer
	session    *session.Session
	settings   Settings
	lastError  *GenerateError
}

func NewService(
	fetcher QuestionFetcher,
	normalizer *trivia.Normalizer,
	sess *session.Session,
	settings Settings,
) *Service {
	settings.Amount = config.ClampAmount(settings.Amount)
	return &Service{
		fetcher:    fetcher,
		normalizer: normalizer,
		session:    sess,
		settings:   settings,
	}
}

func (s *Service) Session() *session.Session {
	return s.session
}

func (s *Service) Settings() Settings {
	return s.settings
}

// SetAmount clamps amount and returns the value which will be used.
func (s *Service) SetAmount(amount int) int {
	s.settings.Amount = config.ClampAmount(amount)
	return s.settings.Amount
}

func (s *Service) SetCategory(category int) {
	s.settings.Category = category
}

// LastError returns the failure of the latest Generate, or nil.
func (s *Service) LastError() *GenerateError {
	return s.lastError
}

// Generate fetches a new batch and starts the session with it.
// On failure the session is started with an empty batch and a *GenerateError is returned.
func (s *Service) Generate(ctx context.Context) error {
	s.lastError = nil

	results, err := s.fetcher.FetchQuestions(ctx, s.settings.query())
	if err == nil && len(results) == 0 {
		err = fmt.Errorf("%w: results is empty", opentdb.ErrEmptyResult)
	}
	if err != nil {
		s.session.Start(nil)
		s.lastError = newGenerateError(err)
		slog.Default().Warn("failed to generate questions",
			"kind", s.lastError.Kind,
			"settings", s.settings,
			"error", err,
		)
		return s.lastError
	}

	questions := s.normalizer.NormalizeAll(opentdb.RawQuestions(results))
	s.session.Start(questions)
	slog.Default().Info("started a new batch",
		"questions", len(questions),
		"requested", s.settings.Amount,
		"version", s.session.Version(),
	)
	return nil
}

// Reset restores the default amount, clears the batch and generates a new one.
func (s *Service) Reset(ctx context.Context) error {
	s.settings.Amount = config.DefaultAmount
	s.lastError = nil
	s.session.Start(nil)
	return s.Generate(ctx)
}

type ErrorKind int

const (
	ErrorKindEmptyResult ErrorKind = iota + 1
	ErrorKindTransportFailure
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrorKindEmptyResult:
		return "empty result"
	case ErrorKindTransportFailure:
		return "transport failure"
	}
	return "unknown"
}

// GenerateError tells why a batch could not be started.
type GenerateError struct {
	Kind ErrorKind
	Err  error
}

func newGenerateError(err error) *GenerateError {
	kind := ErrorKindTransportFailure
	if errors.Is(err, opentdb.ErrEmptyResult) {
		kind = ErrorKindEmptyResult
	}
	return &GenerateError{Kind: kind, Err: err}
}

// Message is shown to the user.
func (e *GenerateError) Message() string {
	if e.Kind == ErrorKindEmptyResult {
		return "No questions returned. Try another category or amount."
	}
	return "Failed to fetch questions. Please try again."
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
