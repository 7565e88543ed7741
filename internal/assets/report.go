package assets

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
	"time"
)

const sessionReportTemplateName = "session-report.md.go.tmpl"

//go:embed templates/session-report.md.go.tmpl
var fallbackSessionReportTemplate string

// SessionReportTemplate is the top-level data structure for session report templates
type SessionReportTemplate struct {
	GeneratedAt time.Time
	Category    string
	Amount      int
	Stats       ReportStats
	Questions   []ReportQuestion
}

type ReportStats struct {
	TotalQuestions  int
	RevealedCount   int
	CorrectCount    int
	WrongCount      int
	AccuracyPercent int
}

// ReportQuestion is a question of the session with the answer of the user, if any
type ReportQuestion struct {
	Number        int
	Text          string
	Category      string
	Difficulty    string
	Answers       []string
	CorrectAnswer string
	Answered      bool
	Selected      string
	IsCorrect     bool
}

func ParseSessionReportTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, sessionReportTemplateName, fallbackSessionReportTemplate)
}

func WriteSessionReport(output io.Writer, templatePath string, templateData SessionReportTemplate) error {
	tmpl, err := ParseSessionReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseSessionReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
