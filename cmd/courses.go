package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List your enrolled courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := buildClient(cmd)
		if err != nil {
			return err
		}

		courses, err := client.Courses(context.Background())
		if err != nil {
			return fmt.Errorf("fetch courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses on your account yet.")
			return nil
		}

		for _, c := range courses {
			fmt.Printf("%4d  %-40s %d questions\n", c.ID, c.Name, c.TotalQuestions)
		}
		return nil
	},
}
