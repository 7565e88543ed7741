package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/at-ishikawa/quizflow/internal/config"
	"github.com/at-ishikawa/quizflow/internal/quiz"
	"github.com/at-ishikawa/quizflow/internal/trivia"
	"github.com/fatih/color"
)

const (
	feedbackCorrect = "Excellent! You got it right!"
	feedbackWrong   = "Oops! Better luck next time!"
)

// TriviaQuizCLI manages the interactive CLI session of a trivia quiz
type TriviaQuizCLI struct {
	*InteractiveQuizCLI
	service       *quiz.Service
	categoryNames map[int]string

	// skipped questions of the batch with skippedVersion
	skipped        map[string]bool
	skippedVersion uint64
}

// NewTriviaQuizCLI creates a trivia quiz CLI.
// categoryNames may be empty when the category list is unavailable.
func NewTriviaQuizCLI(
	service *quiz.Service,
	categoryNames map[int]string,
	stdin io.Reader,
	stdout io.Writer,
) *TriviaQuizCLI {
	if categoryNames == nil {
		categoryNames = map[int]string{}
	}
	return &TriviaQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		service:            service,
		categoryNames:      categoryNames,
		skipped:            map[string]bool{},
	}
}

// Service returns the quiz service played by the CLI.
func (r *TriviaQuizCLI) Service() *quiz.Service {
	return r.service
}

// nextQuestion returns the first question which is neither answered nor skipped.
func (r *TriviaQuizCLI) nextQuestion() (trivia.Question, int, bool) {
	sess := r.service.Session()
	if sess.Version() != r.skippedVersion {
		r.skipped = map[string]bool{}
		r.skippedVersion = sess.Version()
	}
	for i, q := range sess.Questions() {
		if r.skipped[q.ID] {
			continue
		}
		if _, ok := sess.Record(q.ID); ok {
			continue
		}
		return q, i, true
	}
	return trivia.Question{}, 0, false
}

// CategoryName returns the display name of a category id.
func (r *TriviaQuizCLI) CategoryName(category int) string {
	if category == 0 {
		return "Any Category"
	}
	if name, ok := r.categoryNames[category]; ok {
		return name
	}
	return fmt.Sprintf("Category %d", category)
}

func (r *TriviaQuizCLI) PlayTurn(ctx context.Context) error {
	sess := r.service.Session()
	_, _ = fmt.Fprintln(r.stdoutWriter, renderDashboard(sess.Stats(), color.NoColor))

	question, position, ok := r.nextQuestion()
	if !ok {
		r.printBatchStatus()
		_, _ = r.bold.Fprint(r.stdoutWriter, "Command (n: new batch, r: reset, a N: amount, c N: category, q: quit): ")
		return r.readAndExecute(ctx, nil)
	}

	r.printQuestion(question, position, len(sess.Questions()))
	_, _ = r.bold.Fprintf(r.stdoutWriter, "Answer (%s-%s, s: skip, n: new batch, r: reset, a N, c N, q: quit): ",
		answerLetter(0),
		answerLetter(len(question.Answers)-1),
	)
	return r.readAndExecute(ctx, &question)
}

func (r *TriviaQuizCLI) printBatchStatus() {
	if generateErr := r.service.LastError(); generateErr != nil {
		_, _ = r.red.Fprintln(r.stdoutWriter, generateErr.Message())
		return
	}
	if len(r.service.Session().Questions()) == 0 {
		_, _ = fmt.Fprintln(r.stdoutWriter, "No questions yet.")
		return
	}
	if len(r.skipped) > 0 {
		_, _ = fmt.Fprintf(r.stdoutWriter, "No more questions to answer. %d question(s) skipped.\n", len(r.skipped))
		return
	}
	_, _ = fmt.Fprintln(r.stdoutWriter, "You answered all questions!")
}

func (r *TriviaQuizCLI) printQuestion(question trivia.Question, position int, total int) {
	settings := r.service.Settings()
	header := fmt.Sprintf("Question %d/%d", position+1, total)
	details := []string{r.CategoryName(settings.Category)}
	if question.Category != "" {
		details[0] = question.Category
	}
	if question.Difficulty != "" {
		details = append(details, question.Difficulty)
	}
	_, _ = fmt.Fprintf(r.stdoutWriter, "\n%s ", header)
	_, _ = r.italic.Fprintf(r.stdoutWriter, "[%s]\n", strings.Join(details, " / "))
	_, _ = r.bold.Fprintln(r.stdoutWriter, question.Text)
	for i, answer := range question.Answers {
		_, _ = fmt.Fprintf(r.stdoutWriter, "  %s) %s\n", answerLetter(i), answer)
	}
}

// readAndExecute reads one command. question is nil when there is nothing to answer.
func (r *TriviaQuizCLI) readAndExecute(ctx context.Context, question *trivia.Question) error {
	input, err := r.readLine()
	if err != nil {
		return err
	}

	cmd := parseCommand(input)
	switch cmd.kind {
	case commandQuit:
		return errEnd
	case commandNewBatch:
		return r.handleGenerateError(r.service.Generate(ctx))
	case commandReset:
		return r.handleGenerateError(r.service.Reset(ctx))
	case commandAmount:
		amount := r.service.SetAmount(config.ParseAmount(cmd.arg))
		_, _ = fmt.Fprintf(r.stdoutWriter, "Amount set to %d. Press n to fetch a new batch.\n", amount)
		return nil
	case commandCategory:
		r.changeCategory(cmd.arg)
		return nil
	case commandSkip:
		if question == nil {
			break
		}
		r.skipped[question.ID] = true
		return nil
	case commandAnswer:
		if question == nil {
			break
		}
		if cmd.index >= len(question.Answers) {
			_, _ = fmt.Fprintf(r.stdoutWriter, "Invalid choice: %s\n", strings.TrimSpace(input))
			return nil
		}
		r.reveal(*question, question.Answers[cmd.index])
		return nil
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "Unknown command: %s\n", strings.TrimSpace(input))
	return nil
}

func (r *TriviaQuizCLI) reveal(question trivia.Question, selected string) {
	sess := r.service.Session()
	sess.Reveal(question.ID, selected)
	record, ok := sess.Record(question.ID)
	if !ok {
		slog.Default().Warn("no answer record after reveal", "questionID", question.ID)
		return
	}

	if record.IsCorrect {
		_, _ = r.green.Fprintf(r.stdoutWriter, "✓ %s\n", feedbackCorrect)
		return
	}
	_, _ = r.red.Fprintf(r.stdoutWriter, "✗ %s\n", feedbackWrong)
	_, _ = fmt.Fprint(r.stdoutWriter, "Correct answer: ")
	_, _ = r.bold.Fprintln(r.stdoutWriter, question.CorrectAnswer)
}

func (r *TriviaQuizCLI) changeCategory(arg string) {
	category, err := strconv.Atoi(arg)
	if err != nil || category < 0 {
		_, _ = fmt.Fprintf(r.stdoutWriter, "Invalid category: %s\n", arg)
		return
	}
	if _, ok := r.categoryNames[category]; category != 0 && len(r.categoryNames) > 0 && !ok {
		_, _ = fmt.Fprintf(r.stdoutWriter, "Unknown category: %d\n", category)
		return
	}
	r.service.SetCategory(category)
	_, _ = fmt.Fprintf(r.stdoutWriter, "Category set to %s. Press n to fetch a new batch.\n", r.CategoryName(category))
}

// handleGenerateError keeps the quiz running when a batch cannot be fetched.
// The failure is shown on the next turn.
func (r *TriviaQuizCLI) handleGenerateError(err error) error {
	if err == nil {
		return nil
	}
	var generateErr *quiz.GenerateError
	if errors.As(err, &generateErr) {
		return nil
	}
	return fmt.Errorf("generate questions > %w", err)
}
