package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/at-ishikawa/quizflow/internal/cli"
	"github.com/at-ishikawa/quizflow/internal/config"
	"github.com/at-ishikawa/quizflow/internal/opentdb"
	"github.com/at-ishikawa/quizflow/internal/quiz"
	"github.com/at-ishikawa/quizflow/internal/report"
	"github.com/at-ishikawa/quizflow/internal/session"
	"github.com/at-ishikawa/quizflow/internal/trivia"
	"github.com/spf13/cobra"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Trivia quiz commands",
	}

	quizCommand.AddCommand(newQuizPlayCommand())
	quizCommand.AddCommand(newQuizCategoriesCommand())

	return quizCommand
}

type playOptions struct {
	category    int
	hasCategory bool
	amount      int
	hasAmount   bool
	report      bool
	pdf         bool
}

func newQuizPlayCommand() *cobra.Command {
	var options playOptions
	command := &cobra.Command{
		Use:   "play",
		Short: "Play a trivia quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			options.hasCategory = cmd.Flags().Changed("category")
			options.hasAmount = cmd.Flags().Changed("amount")
			return runPlay(cmd.Context(), cfg, options, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	command.Flags().IntVar(&options.category, "category", config.DefaultCategory, "Open Trivia DB category id. 0 means any category")
	command.Flags().IntVar(&options.amount, "amount", config.DefaultAmount, fmt.Sprintf("number of questions (%d-%d)", config.MinAmount, config.MaxAmount))
	command.Flags().BoolVar(&options.report, "report", false, "write a Markdown report of the session when the quiz ends")
	command.Flags().BoolVar(&options.pdf, "pdf", false, "also convert the report to PDF")
	return command
}

func runPlay(ctx context.Context, cfg *config.Config, options playOptions, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings := quiz.Settings{
		Category:   cfg.Quiz.Category,
		Amount:     cfg.Quiz.Amount,
		Difficulty: cfg.Quiz.Difficulty,
		Type:       cfg.Quiz.Type,
	}
	if options.hasCategory {
		settings.Category = options.category
	}
	if options.hasAmount {
		settings.Amount = options.amount
	}

	client := opentdb.NewClient(opentdb.ClientConfig{
		BaseURL:          cfg.OpenTDB.BaseURL,
		Timeout:          time.Duration(cfg.OpenTDB.TimeoutSeconds) * time.Second,
		MaxRetryAttempts: cfg.OpenTDB.MaxRetryAttempts,
	})
	defer func() {
		_ = client.Close()
	}()

	// The quiz works without category names
	categories, err := newCategoryReader(cfg).Categories(ctx)
	if err != nil {
		slog.Default().Warn("failed to load categories", "error", err)
	}

	service := quiz.NewService(client, trivia.NewNormalizer(), session.New(), settings)
	quizCLI := cli.NewTriviaQuizCLI(service, opentdb.CategoryNames(categories), stdin, stdout)

	_, _ = fmt.Fprintf(stdout, "Trivia quiz started! Category: %s, questions: %d\n",
		quizCLI.CategoryName(service.Settings().Category),
		service.Settings().Amount,
	)
	_, _ = fmt.Fprintln(stdout, "Type the letter of an answer, or q to quit.")
	if err := service.Generate(ctx); err != nil {
		var generateErr *quiz.GenerateError
		if !errors.As(err, &generateErr) {
			return fmt.Errorf("service.Generate() > %w", err)
		}
	}

	if err := quizCLI.Run(ctx, quizCLI); err != nil {
		return err
	}

	stats := service.Session().Stats()
	_, _ = fmt.Fprintf(stdout, "Final score: %d/%d correct (%d%%)\n", stats.CorrectCount, stats.RevealedCount, stats.AccuracyPercent)

	if !options.report && !options.pdf {
		return nil
	}
	writer := report.NewWriter(cfg.Reports.Directory, cfg.Reports.Template)
	markdownPath, err := writer.Write(
		service.Session(),
		quizCLI.CategoryName(service.Settings().Category),
		service.Settings().Amount,
	)
	if err != nil {
		return fmt.Errorf("writer.Write() > %w", err)
	}
	_, _ = fmt.Fprintf(stdout, "Report written to: %s\n", markdownPath)

	if options.pdf {
		pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
		if err != nil {
			return fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
		}
		_, _ = fmt.Fprintf(stdout, "PDF generated at: %s\n", pdfPath)
	}
	return nil
}

func newQuizCategoriesCommand() *cobra.Command {
	var refresh bool
	command := &cobra.Command{
		Use:   "categories",
		Short: "List the categories of Open Trivia DB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runCategories(cmd.Context(), cfg, refresh, cmd.OutOrStdout())
		},
	}
	command.Flags().BoolVar(&refresh, "refresh", false, "fetch the categories again instead of reading the cache")
	return command
}

func runCategories(ctx context.Context, cfg *config.Config, refresh bool, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reader := newCategoryReader(cfg)
	var categories []opentdb.Category
	var err error
	if refresh {
		categories, err = reader.Refresh(ctx)
	} else {
		categories, err = reader.Categories(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	categories = slices.Clone(categories)
	slices.SortFunc(categories, func(a, b opentdb.Category) int {
		return a.ID - b.ID
	})
	for _, category := range categories {
		marker := ""
		if category.ID == cfg.Quiz.Category {
			marker = " (default)"
		}
		_, _ = fmt.Fprintf(stdout, "%3d  %s%s\n", category.ID, category.Name, marker)
	}
	return nil
}
