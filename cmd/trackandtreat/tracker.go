package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/tracking"
)

// waterGoalML is the daily water intake goal in milliliters.
const waterGoalML = 3500

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Interactive daily tracking session (water, servings, meal log)",
	Long: `Start an interactive tracking session. Tracking state lives for the
session only; it is not persisted.

Commands inside the session:
  water <ml>        add water intake
  serving           add one fruit/veg serving (max 5)
  meal <text> [kcal] log a meal; kcal is estimated when omitted
  rm <id>           remove a logged meal (id prefix is enough)
  log               show the session state
  analyze           AI analysis of the meal log
  quit              end the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tracker := tracking.New()
		printStep("Tracking session started, state resets when you quit")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stderr, "track> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			switch fields[0] {
			case "quit", "exit":
				return nil
			case "water":
				if len(fields) != 2 {
					printWarning("usage: water <ml>")
					continue
				}
				ml, err := strconv.Atoi(fields[1])
				if err != nil || ml <= 0 {
					printWarning("amount must be a positive number of milliliters")
					continue
				}
				total := tracker.AddWater(ml)
				printSuccess("Water: %d / %d ml", total, waterGoalML)
			case "serving":
				n := tracker.AddServing()
				printSuccess("Fruit & veg servings: %d / %d", n, tracking.MaxFruitVegServings)
			case "meal":
				if len(fields) < 2 {
					printWarning("usage: meal <text> [kcal]")
					continue
				}
				text := strings.Join(fields[1:], " ")
				kcal := 0
				if last := fields[len(fields)-1]; len(fields) > 2 {
					if v, err := strconv.Atoi(last); err == nil {
						kcal = v
						text = strings.Join(fields[1:len(fields)-1], " ")
					}
				}
				entry := tracker.LogMeal(text, kcal)
				printSuccess("Logged %q (~%d kcal) at %s", entry.Text, entry.Kcal, entry.Time)
			case "rm":
				if len(fields) != 2 {
					printWarning("usage: rm <id>")
					continue
				}
				id := resolveMealID(tracker, fields[1])
				tracker.RemoveMeal(id)
				printSuccess("Removed")
			case "log":
				printTrackingState(tracker)
			case "analyze":
				st := tracker.State()
				if len(st.MealLog) == 0 {
					printWarning("nothing logged yet")
					continue
				}
				client, err := a.gemini(cmd)
				if err != nil {
					printError("%v", err)
					continue
				}
				printStep("Analyzing meal log...")
				result, err := client.AnalyzeMealLog(cmd.Context(), st.MealLog, a.store.Profile())
				if err != nil {
					printError("%v", err)
					continue
				}
				fmt.Println(renderMarkdown(result))
			default:
				printWarning("unknown command %q", fields[0])
			}
		}
	},
}

// resolveMealID expands a unique id prefix to the full meal id.
func resolveMealID(tracker *tracking.Tracker, prefix string) string {
	var match string
	for _, m := range tracker.State().MealLog {
		if strings.HasPrefix(m.ID, prefix) {
			if match != "" {
				return prefix // ambiguous; let the delete be a no-op
			}
			match = m.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}

func printTrackingState(tracker *tracking.Tracker) {
	st := tracker.State()
	printStatus("Water", "%d / %d ml", st.WaterIntake, waterGoalML)
	printStatus("Servings", "%d / %d", st.FruitVegServings, tracking.MaxFruitVegServings)
	if len(st.MealLog) == 0 {
		printStatus("Meals", "none logged")
		return
	}
	printStatus("Meals", "%d logged, ~%d kcal total", len(st.MealLog), tracker.TotalKcal())
	for _, m := range st.MealLog {
		fmt.Printf("    %s  %s  %s (~%d kcal)\n", m.ID[:8], m.Time, m.Text, m.Kcal)
	}
}
