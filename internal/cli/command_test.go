package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  command
	}{
		{input: "a\n", want: command{kind: commandAnswer, index: 0}},
		{input: " D ", want: command{kind: commandAnswer, index: 3}},
		{input: "c", want: command{kind: commandAnswer, index: 2}},
		{input: "2", want: command{kind: commandAnswer, index: 1}},
		{input: "s", want: command{kind: commandSkip}},
		{input: "skip", want: command{kind: commandSkip}},
		{input: "n", want: command{kind: commandNewBatch}},
		{input: "r", want: command{kind: commandReset}},
		{input: "q", want: command{kind: commandQuit}},
		{input: "exit", want: command{kind: commandQuit}},
		{input: "a 20", want: command{kind: commandAmount, arg: "20"}},
		{input: "amount x", want: command{kind: commandAmount, arg: "x"}},
		{input: "c 11", want: command{kind: commandCategory, arg: "11"}},
		{input: "category 0", want: command{kind: commandCategory, arg: "0"}},
		{input: "", want: command{kind: commandUnknown}},
		{input: "0", want: command{kind: commandUnknown}},
		{input: "hello", want: command{kind: commandUnknown}},
		{input: "x 1 2", want: command{kind: commandUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommand(tt.input))
		})
	}
}

func TestAnswerLetter(t *testing.T) {
	assert.Equal(t, "a", answerLetter(0))
	assert.Equal(t, "d", answerLetter(3))
}
