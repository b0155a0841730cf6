package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/app"
	"github.com/adesai/prepdeck/internal/attempt"
	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/screens/quiz"
	"github.com/adesai/prepdeck/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <course-id>",
	Short: "Start a practice quiz for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttempt(cmd, args[0], attempt.ModeQuiz)
	},
}

var examCmd = &cobra.Command{
	Use:   "exam <course-id>",
	Short: "Start a timed mock exam for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttempt(cmd, args[0], attempt.ModeExam)
	},
}

// runAttempt launches the TUI directly into an attempt for the given
// course, with the home screen underneath for when it pops.
func runAttempt(cmd *cobra.Command, rawID string, mode attempt.Mode) error {
	courseID, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("course id must be a number: %q", rawID)
	}

	cfg, client, err := buildClient(cmd)
	if err != nil {
		return err
	}

	course, err := findCourse(cmd.Context(), client, courseID)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	attempts := st.Attempts()
	return app.Run(app.Options{
		Client:   client,
		Attempts: attempts,
		Start:    quiz.New(client, attempts, course, mode),
	})
}

func findCourse(ctx context.Context, client courseLister, courseID int) (catalog.Course, error) {
	courses, err := client.Courses(ctx)
	if err != nil {
		return catalog.Course{}, fmt.Errorf("fetch courses: %w", err)
	}
	for _, c := range courses {
		if c.ID == courseID {
			return c, nil
		}
	}
	return catalog.Course{}, fmt.Errorf("course %d not found on your account", courseID)
}

type courseLister interface {
	Courses(ctx context.Context) ([]catalog.Course, error)
}

func init() {
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(examCmd)
}
