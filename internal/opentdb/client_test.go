package opentdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchQuestions(t *testing.T) {
	tests := []struct {
		name         string
		query        Query
		statusCodes  []int
		bodies       []string
		wantQuery    string
		wantRequests int32
		wantResults  []Result
		wantError    error
	}{
		{
			name:        "success",
			query:       Query{Amount: 2, Category: 9},
			statusCodes: []int{http.StatusOK},
			bodies: []string{`{"response_code":0,"results":[
				{"category":"General Knowledge","type":"multiple","difficulty":"easy","question":"Q &amp; A?","correct_answer":"A","incorrect_answers":["B","C","D"]},
				{"category":"General Knowledge","type":"boolean","difficulty":"hard","question":"True?","correct_answer":"True","incorrect_answers":["False"]}
			]}`},
			wantQuery:    "amount=2&category=9",
			wantRequests: 1,
			wantResults: []Result{
				{Category: "General Knowledge", Type: "multiple", Difficulty: "easy", Question: "Q &amp; A?", CorrectAnswer: "A", IncorrectAnswers: TextList{"B", "C", "D"}},
				{Category: "General Knowledge", Type: "boolean", Difficulty: "hard", Question: "True?", CorrectAnswer: "True", IncorrectAnswers: TextList{"False"}},
			},
		},
		{
			name:         "any category with difficulty and type",
			query:        Query{Amount: 1, Difficulty: "medium", Type: "boolean"},
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":0,"results":[{"question":"Q","correct_answer":"True","incorrect_answers":["False"]}]}`},
			wantQuery:    "amount=1&difficulty=medium&type=boolean",
			wantRequests: 1,
			wantResults: []Result{
				{Question: "Q", CorrectAnswer: "True", IncorrectAnswers: TextList{"False"}},
			},
		},
		{
			name:         "malformed fields degrade to empty strings",
			query:        Query{Amount: 2},
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":0,"results":[{"question":null,"correct_answer":42,"incorrect_answers":"x"}, 7]}`},
			wantRequests: 1,
			wantResults:  []Result{{}, {}},
		},
		{
			name:         "no results for the filters",
			query:        Query{Amount: 50, Category: 13},
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":1,"results":[]}`},
			wantRequests: 1,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "missing response code",
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"results":[]}`},
			wantRequests: 1,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "results is not a list",
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":0,"results":"oops"}`},
			wantRequests: 1,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "results is missing",
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":0}`},
			wantRequests: 1,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "results is empty",
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`{"response_code":0,"results":[]}`},
			wantRequests: 1,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "rate limited on every attempt",
			statusCodes:  []int{http.StatusOK, http.StatusOK},
			bodies:       []string{`{"response_code":5,"results":[]}`, `{"response_code":5,"results":[]}`},
			wantRequests: 2,
			wantError:    ErrEmptyResult,
		},
		{
			name:         "server error then success",
			query:        Query{Amount: 1},
			statusCodes:  []int{http.StatusInternalServerError, http.StatusOK},
			bodies:       []string{`oops`, `{"response_code":0,"results":[{"question":"Q","correct_answer":"A","incorrect_answers":[]}]}`},
			wantQuery:    "amount=1",
			wantRequests: 2,
			wantResults:  []Result{{Question: "Q", CorrectAnswer: "A", IncorrectAnswers: TextList{}}},
		},
		{
			name:         "client error is not retried",
			statusCodes:  []int{http.StatusNotFound},
			bodies:       []string{`not found`},
			wantRequests: 1,
			wantError:    ErrTransportFailure,
		},
		{
			name:         "invalid json",
			statusCodes:  []int{http.StatusOK},
			bodies:       []string{`<html>`},
			wantRequests: 1,
			wantError:    ErrTransportFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				i := atomic.AddInt32(&requests, 1) - 1
				if int(i) >= len(tt.bodies) {
					w.WriteHeader(http.StatusTeapot)
					return
				}
				assert.Equal(t, "/api.php", r.URL.Path)
				if tt.wantQuery != "" {
					assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCodes[i])
				_, _ = w.Write([]byte(tt.bodies[i]))
			}))
			defer server.Close()

			client := NewClient(ClientConfig{
				BaseURL:          server.URL,
				Timeout:          5 * time.Second,
				MaxRetryAttempts: 1,
				RetryDelay:       time.Millisecond,
			})
			defer func() {
				_ = client.Close()
			}()

			got, err := client.FetchQuestions(context.Background(), tt.query)
			assert.Equal(t, tt.wantRequests, atomic.LoadInt32(&requests))
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResults, got)
		})
	}
}

func TestClient_FetchQuestions_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(ClientConfig{
		BaseURL:          baseURL,
		MaxRetryAttempts: 1,
		RetryDelay:       time.Millisecond,
	})
	_, err := client.FetchQuestions(context.Background(), Query{Amount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.NotErrorIs(t, err, ErrEmptyResult)
}

func TestClient_FetchQuestions_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := client.FetchQuestions(ctx, Query{Amount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransportFailure)
}
