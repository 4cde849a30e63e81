package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/quiz"
	"github.com/spf13/cobra"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Browse problems and grade answers on the quiz service",
		Long: `Talk to the quiz service configured by LEETTOMATO_QUIZ_URL and
LEETTOMATO_QUIZ_PASSWORD.`,
	}
	cmd.AddCommand(
		newQuizProblemsCmd(app),
		newQuizShowCmd(app),
		newQuizTopicsCmd(app),
		newQuizGradeCmd(app),
		newQuizSmokeCmd(app),
	)
	return cmd
}

// quizClient returns the configured client or a hint about how to set it up.
func quizClient(app *App) (quiz.Client, error) {
	if app.Quiz == nil {
		return nil, fmt.Errorf("%w: set LEETTOMATO_QUIZ_URL and LEETTOMATO_QUIZ_PASSWORD", quiz.ErrNotConfigured)
	}
	return app.Quiz, nil
}

// quizError turns transport failures into user-facing messages. API errors
// keep the service's own message.
func quizError(err error) error {
	var apiErr *quiz.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode == 401:
		return fmt.Errorf("quiz service rejected the password: %w", err)
	case errors.Is(err, quiz.ErrTimeout):
		return fmt.Errorf("quiz service did not answer in time: %w", err)
	case errors.Is(err, quiz.ErrUnavailable):
		return fmt.Errorf("quiz service is unreachable: %w", err)
	}
	return err
}

func parseProblemID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid problem id %q", s)
	}
	return id, nil
}

func newQuizProblemsCmd(app *App) *cobra.Command {
	var params quiz.ListParams

	cmd := &cobra.Command{
		Use:     "problems",
		Aliases: []string{"ls"},
		Short:   "List problems",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := quizClient(app)
			if err != nil {
				return err
			}
			resp, err := client.ListProblems(cmd.Context(), params)
			if err != nil {
				return quizError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuizList(*resp))
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Q, "q", "", "Search text")
	cmd.Flags().StringVar(&params.Difficulty, "difficulty", "", "Easy, Medium or Hard")
	cmd.Flags().StringVar(&params.Topic, "topic", "", "Topic tag")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "Rows to skip")
	return cmd
}

func newQuizShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a full problem statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProblemID(args[0])
			if err != nil {
				return err
			}
			client, err := quizClient(app)
			if err != nil {
				return err
			}
			p, err := client.GetProblem(cmd.Context(), id)
			if err != nil {
				return quizError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuizProblem(*p))
			return nil
		},
	}
}

func newQuizTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topic tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := quizClient(app)
			if err != nil {
				return err
			}
			topics, err := client.ListTopics(cmd.Context())
			if err != nil {
				return quizError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopics(topics))
			return nil
		},
	}
}

func newQuizGradeCmd(app *App) *cobra.Command {
	var answer, file string

	cmd := &cobra.Command{
		Use:   "grade ID",
		Short: "Grade a written answer",
		Long:  "Grade a written answer. Pass it with --answer, or --file (use - for stdin).",
		Example: `  leettomato quiz grade 1 --answer "hash map of complements, O(n)"
  leettomato quiz grade 1 --file answer.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProblemID(args[0])
			if err != nil {
				return err
			}
			text, err := readAnswer(cmd.InOrStdin(), answer, file)
			if err != nil {
				return err
			}
			client, err := quizClient(app)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.IsInteractive != nil && app.IsInteractive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Grading...")
			}
			resp, err := client.Grade(cmd.Context(), id, text)
			stop()
			if err != nil {
				return quizError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGradeResult(*resp))
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "Answer text")
	cmd.Flags().StringVar(&file, "file", "", "Read the answer from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("answer", "file")
	cmd.MarkFlagsOneRequired("answer", "file")
	return cmd
}

// readAnswer returns the inline answer or the contents of file.
func readAnswer(stdin io.Reader, answer, file string) (string, error) {
	if file == "" {
		if strings.TrimSpace(answer) == "" {
			return "", errors.New("answer is empty")
		}
		return answer, nil
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("answer is empty")
	}
	return string(data), nil
}

func newQuizSmokeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Check that the quiz service and its model are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := quizClient(app)
			if err != nil {
				return err
			}
			resp, err := client.Smoke(cmd.Context())
			if err != nil {
				return quizError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSmoke(*resp))
			if !resp.OK {
				return errors.New("quiz service unhealthy")
			}
			return nil
		},
	}
}
