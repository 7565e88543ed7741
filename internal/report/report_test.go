package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/at-ishikawa/quizflow/internal/session"
	"github.com/at-ishikawa/quizflow/internal/trivia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New()
	sess.Start([]trivia.Question{
		{
			ID:            "q1",
			Text:          "What is 2 + 2?",
			CorrectAnswer: "4",
			Answers:       []string{"3", "4"},
			Category:      "Science: Mathematics",
			Difficulty:    "easy",
		},
		{
			ID:            "q2",
			Text:          "Is the sky green?",
			CorrectAnswer: "False",
			Answers:       []string{"True", "False"},
		},
		{
			ID:            "q3",
			Text:          "Capital of France?",
			CorrectAnswer: "Paris",
			Answers:       []string{"Paris", "Rome"},
		},
	})
	require.True(t, sess.Reveal("q1", "4"))
	require.True(t, sess.Reveal("q2", "True"))
	return sess
}

func TestWriter_Write(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "reports")
	writer := NewWriter(directory, "")
	writer.now = func() time.Time {
		return time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)
	}

	path, err := writer.Write(newTestSession(t), "General Knowledge", 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(directory, "quiz-20261015-093005.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	got := string(content)
	for _, want := range []string{
		"- Category: General Knowledge",
		"| 3 | 2 | 1 | 1 | 50% |",
		"- Your answer: 4 (correct)",
		"- Your answer: True (wrong)",
		"### 3. Capital of France?",
		"- Your answer: not answered",
	} {
		assert.Contains(t, got, want)
	}
}

func TestWriter_Write_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "report.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte(
		`{{ .Stats.CorrectCount }}/{{ .Stats.TotalQuestions }}{{ range .Questions }} {{ .Number }}:{{ .Answered }}{{ end }}`,
	), 0644))

	writer := NewWriter(filepath.Join(dir, "out"), templatePath)
	path, err := writer.Write(newTestSession(t), "Any Category", 3)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1/3 1:true 2:true 3:false", string(content))
}

func TestWriter_Write_DirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	writer := NewWriter(filepath.Join(blocker, "reports"), "")
	_, err := writer.Write(session.New(), "", 10)
	assert.Error(t, err)
}

func TestConvertMarkdownToPDF(t *testing.T) {
	dir := t.TempDir()

	t.Run("rejects non markdown files", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(dir, "report.txt"))
		assert.ErrorContains(t, err, "must have .md extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(dir, "missing.md"))
		assert.Error(t, err)
	})

	t.Run("converts markdown", func(t *testing.T) {
		markdownPath := filepath.Join(dir, "report.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Report\n\n- item\n"), 0644))

		pdfPath, err := ConvertMarkdownToPDF(markdownPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.pdf"), pdfPath)
		info, err := os.Stat(pdfPath)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})
}
