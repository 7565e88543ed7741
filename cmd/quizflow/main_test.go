package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "quizflow", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	quizCommand, _, err := cmd.Find([]string{"quiz", "play"})
	assert.NoError(t, err)
	assert.Equal(t, "play", quizCommand.Use)
}

func TestNewQuizCommand(t *testing.T) {
	cmd := newQuizCommand()

	assert.Equal(t, "quiz", cmd.Use)
	assert.True(t, cmd.HasSubCommands())

	play, _, err := cmd.Find([]string{"play"})
	assert.NoError(t, err)
	for _, flag := range []string{"category", "amount", "report", "pdf"} {
		assert.NotNil(t, play.Flags().Lookup(flag), flag)
	}

	categories, _, err := cmd.Find([]string{"categories"})
	assert.NoError(t, err)
	assert.NotNil(t, categories.Flags().Lookup("refresh"))
}
