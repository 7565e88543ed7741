package opentdb

import (
	"encoding/json"
	"testing"

	"github.com/at-ishikawa/quizflow/internal/trivia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Result
	}{
		{
			name: "all fields",
			data: `{"category":"Science","type":"multiple","difficulty":"hard","question":"Q","correct_answer":"A","incorrect_answers":["B","C"]}`,
			want: Result{Category: "Science", Type: "multiple", Difficulty: "hard", Question: "Q", CorrectAnswer: "A", IncorrectAnswers: TextList{"B", "C"}},
		},
		{
			name: "missing fields",
			data: `{"question":"Q"}`,
			want: Result{Question: "Q"},
		},
		{
			name: "null and non-string values",
			data: `{"question":null,"correct_answer":{"x":1},"incorrect_answers":[null,3,"B"]}`,
			want: Result{IncorrectAnswers: TextList{"", "", "B"}},
		},
		{
			name: "incorrect answers is not a list",
			data: `{"question":"Q","correct_answer":"A","incorrect_answers":"B"}`,
			want: Result{Question: "Q", CorrectAnswer: "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Result
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawQuestions(t *testing.T) {
	results := []Result{
		{Category: "Art", Type: "boolean", Difficulty: "easy", Question: "Q1", CorrectAnswer: "True", IncorrectAnswers: TextList{"False"}},
		{Question: "Q2"},
	}

	got := RawQuestions(results)
	assert.Equal(t, []trivia.RawQuestion{
		{Category: "Art", Type: "boolean", Difficulty: "easy", Question: "Q1", CorrectAnswer: "True", IncorrectAnswers: []string{"False"}},
		{Question: "Q2", IncorrectAnswers: []string{}},
	}, got)
}

func TestDecodeResults(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantOK  bool
	}{
		{name: "missing", raw: ``, wantOK: false},
		{name: "null", raw: `null`, wantOK: false},
		{name: "object", raw: `{"a":1}`, wantOK: false},
		{name: "empty list", raw: ` []`, wantOK: true},
		{name: "list", raw: `[{"question":"a"},{"question":"b"}]`, wantLen: 2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeResults(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestResponseCode_String(t *testing.T) {
	assert.Equal(t, "success", ResponseCodeSuccess.String())
	assert.Equal(t, "rate limit", ResponseCodeRateLimit.String())
	assert.Equal(t, "unknown", ResponseCode(99).String())
}

func TestCategoryNames(t *testing.T) {
	got := CategoryNames([]Category{{ID: 9, Name: "General Knowledge"}, {ID: 17, Name: "Science & Nature"}})
	assert.Equal(t, map[int]string{9: "General Knowledge", 17: "Science & Nature"}, got)
}
