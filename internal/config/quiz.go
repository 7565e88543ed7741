package config

import (
	"strconv"
	"strings"
)

const (
	// DefaultCategory is General Knowledge on Open Trivia DB.
	DefaultCategory = 9
	DefaultAmount   = 10
	MinAmount       = 1
	MaxAmount       = 50
)

// ClampAmount returns amount when it is within [MinAmount, MaxAmount], or DefaultAmount.
func ClampAmount(amount int) int {
	if amount < MinAmount || amount > MaxAmount {
		return DefaultAmount
	}
	return amount
}

// ParseAmount parses user input into an amount, falling back to DefaultAmount.
func ParseAmount(input string) int {
	amount, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return DefaultAmount
	}
	return ClampAmount(amount)
}
