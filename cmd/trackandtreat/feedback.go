package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/model"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record and list app feedback",
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Record a feedback entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return fmt.Errorf("feedback text is required")
		}

		kind, _ := cmd.Flags().GetString("type")
		var typ model.FeedbackType
		switch strings.ToLower(kind) {
		case "bug":
			typ = model.FeedbackBug
		case "suggestion":
			typ = model.FeedbackSuggestion
		case "general", "":
			typ = model.FeedbackGeneral
		default:
			return fmt.Errorf("feedback type must be bug, suggestion, or general")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.feedback.Add(typ, content)
		printSuccess("%s", a.store.Strings().FeedbackSuccess)
		return nil
	},
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		entries := a.feedback.List()
		if len(entries) == 0 {
			fmt.Println("No feedback recorded.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("  [%s] %s: %s\n", e.Type, e.Timestamp, e.Content)
		}
		return nil
	},
}

func init() {
	feedbackAddCmd.Flags().String("type", "general", "bug, suggestion, or general")
	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
}
