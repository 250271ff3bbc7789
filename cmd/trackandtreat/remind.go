package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/model"
)

var timeHHMM = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage meal and water reminders",
}

var remindAddCmd = &cobra.Command{
	Use:   "add <HH:MM> <meal|water>",
	Short: "Add a daily reminder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		at := args[0]
		if !timeHHMM.MatchString(at) {
			return fmt.Errorf("time must be HH:MM, got %q", at)
		}

		var typ model.ReminderType
		switch args[1] {
		case "meal":
			typ = model.ReminderMeal
		case "water":
			typ = model.ReminderWater
		default:
			return fmt.Errorf("reminder type must be meal or water, got %q", args[1])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		r := a.reminders.Add(at, typ)
		printSuccess("Reminder added: %s %s (%s)", r.Time, r.Type, r.ID[:8])
		return nil
	},
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders in time order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		reminders := a.reminders.List()
		if len(reminders) == 0 {
			fmt.Println(a.store.Strings().NoRemindersSet)
			return nil
		}
		for _, r := range reminders {
			fmt.Printf("  %s  %s  %-5s\n", r.ID[:8], r.Time, r.Type)
		}
		return nil
	},
}

var remindRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a reminder (id prefix is enough)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		id := args[0]
		for _, r := range a.reminders.List() {
			if r.ID == id || (len(id) >= 4 && len(r.ID) >= len(id) && r.ID[:len(id)] == id) {
				a.reminders.Delete(r.ID)
				printSuccess("Reminder %s deleted", r.Time)
				return nil
			}
		}
		printWarning("no reminder matches %q", id)
		return nil
	},
}

func init() {
	remindCmd.AddCommand(remindAddCmd)
	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindRmCmd)
}
