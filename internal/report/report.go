// Package report exports a finished quiz session as a Markdown or PDF file.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/quizflow/internal/assets"
	"github.com/at-ishikawa/quizflow/internal/session"
	"github.com/mandolyte/mdtopdf"
)

type Writer struct {
	directory    string
	templatePath string
	now          func() time.Time
}

func NewWriter(directory string, templatePath string) *Writer {
	return &Writer{
		directory:    directory,
		templatePath: templatePath,
		now:          time.Now,
	}
}

// Write writes the report of sess into the directory and returns the path of the Markdown file.
func (writer *Writer) Write(sess *session.Session, category string, amount int) (string, error) {
	generatedAt := writer.now()
	templateData := newSessionReportTemplate(sess, category, amount, generatedAt)

	if err := os.MkdirAll(writer.directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", writer.directory, err)
	}

	outputFilename := filepath.Join(writer.directory, "quiz-"+generatedAt.Format("20060102-150405")+".md")
	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteSessionReport(output, writer.templatePath, templateData); err != nil {
		return "", fmt.Errorf("assets.WriteSessionReport(%s, %s, ) > %w", outputFilename, writer.templatePath, err)
	}
	slog.Default().Debug("wrote a session report",
		"path", outputFilename,
		"questions", len(templateData.Questions),
	)
	return outputFilename, nil
}

func newSessionReportTemplate(sess *session.Session, category string, amount int, generatedAt time.Time) assets.SessionReportTemplate {
	stats := sess.Stats()
	questions := sess.Questions()
	templateData := assets.SessionReportTemplate{
		GeneratedAt: generatedAt,
		Category:    category,
		Amount:      amount,
		Stats: assets.ReportStats{
			TotalQuestions:  stats.TotalQuestions,
			RevealedCount:   stats.RevealedCount,
			CorrectCount:    stats.CorrectCount,
			WrongCount:      stats.WrongCount,
			AccuracyPercent: stats.AccuracyPercent,
		},
		Questions: make([]assets.ReportQuestion, 0, len(questions)),
	}
	for i, q := range questions {
		reportQuestion := assets.ReportQuestion{
			Number:        i + 1,
			Text:          q.Text,
			Category:      q.Category,
			Difficulty:    q.Difficulty,
			Answers:       q.Answers,
			CorrectAnswer: q.CorrectAnswer,
		}
		if record, ok := sess.Record(q.ID); ok {
			reportQuestion.Answered = true
			reportQuestion.Selected = record.Selected
			reportQuestion.IsCorrect = record.IsCorrect
		}
		templateData.Questions = append(templateData.Questions, reportQuestion)
	}
	return templateData
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
