package cli

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	commandUnknown commandKind = iota
	commandAnswer
	commandSkip
	commandNewBatch
	commandReset
	commandAmount
	commandCategory
	commandQuit
)

type command struct {
	kind commandKind
	// index of the selected answer for commandAnswer
	index int
	// raw argument for commandAmount and commandCategory
	arg string
}

// parseCommand reads one input line.
// A single letter selects an answer, so "a" and "c" only change the amount or category
// when they are followed by an argument.
func parseCommand(input string) command {
	fields := strings.Fields(strings.ToLower(input))
	switch len(fields) {
	case 1:
		switch fields[0] {
		case "s", "skip":
			return command{kind: commandSkip}
		case "n", "new":
			return command{kind: commandNewBatch}
		case "r", "reset":
			return command{kind: commandReset}
		case "q", "quit", "exit":
			return command{kind: commandQuit}
		}
		if index, ok := answerIndex(fields[0]); ok {
			return command{kind: commandAnswer, index: index}
		}
		if number, err := strconv.Atoi(fields[0]); err == nil && number > 0 {
			return command{kind: commandAnswer, index: number - 1}
		}
	case 2:
		switch fields[0] {
		case "a", "amount":
			return command{kind: commandAmount, arg: fields[1]}
		case "c", "category":
			return command{kind: commandCategory, arg: fields[1]}
		}
	}
	return command{kind: commandUnknown}
}

func answerIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, false
	}
	return int(s[0] - 'a'), true
}

func answerLetter(index int) string {
	return string(rune('a' + index))
}
