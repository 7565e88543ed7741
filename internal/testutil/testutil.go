// Package testutil provides shared test helpers for creating config files and Open Trivia DB fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file which points to baseURL and keeps every directory under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`quiz:
  category: 9
  amount: 2
opentdb:
  base_url: %s
  timeout_seconds: 5
  max_retry_attempts: 0
categories:
  cache_directory: %s
reports:
  directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "cache"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// TriviaQuestion is a question in the format of the Open Trivia DB API.
type TriviaQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// TriviaCategory is a category in the format of the Open Trivia DB API.
type TriviaCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewOpenTDBServer starts a fake Open Trivia DB which serves questions and categories.
// The first amount questions are returned for each request.
func NewOpenTDBServer(t *testing.T, questions []TriviaQuestion, categories []TriviaCategory) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api.php", func(w http.ResponseWriter, r *http.Request) {
		results := questions
		var amount int
		if _, err := fmt.Sscanf(r.URL.Query().Get("amount"), "%d", &amount); err == nil && amount < len(results) {
			results = results[:amount]
		}
		responseCode := 0
		if len(results) == 0 {
			responseCode = 1
		}
		writeJSON(w, map[string]any{
			"response_code": responseCode,
			"results":       results,
		})
	})
	mux.HandleFunc("/api_category.php", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"trivia_categories": categories,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
