// https://opentdb.com/api_config.php
package opentdb

import (
	"bytes"
	"encoding/json"

	"github.com/at-ishikawa/quizflow/internal/trivia"
)

type ResponseCode int

const (
	ResponseCodeSuccess          ResponseCode = 0
	ResponseCodeNoResults        ResponseCode = 1
	ResponseCodeInvalidParameter ResponseCode = 2
	ResponseCodeTokenNotFound    ResponseCode = 3
	ResponseCodeTokenEmpty       ResponseCode = 4
	ResponseCodeRateLimit        ResponseCode = 5
)

func (code ResponseCode) String() string {
	switch code {
	case ResponseCodeSuccess:
		return "success"
	case ResponseCodeNoResults:
		return "no results"
	case ResponseCodeInvalidParameter:
		return "invalid parameter"
	case ResponseCodeTokenNotFound:
		return "token not found"
	case ResponseCodeTokenEmpty:
		return "token empty"
	case ResponseCodeRateLimit:
		return "rate limit"
	}
	return "unknown"
}

// questionsResponse keeps results raw so that a non-list value can be told apart from a decode failure.
type questionsResponse struct {
	ResponseCode *ResponseCode  `json:"response_code"`
	Results      json.RawMessage `json:"results"`
}

type Result struct {
	Category         Text     `json:"category"`
	Type             Text     `json:"type"`
	Difficulty       Text     `json:"difficulty"`
	Question         Text     `json:"question"`
	CorrectAnswer    Text     `json:"correct_answer"`
	IncorrectAnswers TextList `json:"incorrect_answers"`
}

func (r Result) RawQuestion() trivia.RawQuestion {
	incorrect := make([]string, 0, len(r.IncorrectAnswers))
	for _, answer := range r.IncorrectAnswers {
		incorrect = append(incorrect, string(answer))
	}
	return trivia.RawQuestion{
		Category:         string(r.Category),
		Type:             string(r.Type),
		Difficulty:       string(r.Difficulty),
		Question:         string(r.Question),
		CorrectAnswer:    string(r.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}

// RawQuestions converts results in order.
func RawQuestions(results []Result) []trivia.RawQuestion {
	raws := make([]trivia.RawQuestion, 0, len(results))
	for _, result := range results {
		raws = append(raws, result.RawQuestion())
	}
	return raws
}

// Text is a string field which decodes null or any non-string value as an empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// TextList decodes a non-list value as an empty list.
type TextList []Text

func (list *TextList) UnmarshalJSON(data []byte) error {
	var items []Text
	if err := json.Unmarshal(data, &items); err != nil {
		*list = nil
		return nil
	}
	*list = items
	return nil
}

// decodeResults returns ok=false when raw is missing or is not a JSON array.
// Elements which are not objects become empty results.
func decodeResults(raw json.RawMessage) ([]Result, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		var result Result
		if err := json.Unmarshal(item, &result); err != nil {
			result = Result{}
		}
		results = append(results, result)
	}
	return results, true
}

type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type categoriesResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

// CategoryNames maps category IDs to their names.
func CategoryNames(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Name
	}
	return m
}
