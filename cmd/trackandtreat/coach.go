package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "AI summary of the current health assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		assessment := a.store.Profile().Assessment
		if assessment.BMI == nil {
			return fmt.Errorf("no assessment yet; set weight, height, and age first (trackandtreat profile set)")
		}

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}
		printStep("Generating summary...")
		out, err := client.HealthSummary(cmd.Context(), assessment)
		if err != nil {
			return err
		}
		fmt.Println(renderMarkdown(out))
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a 3-day meal plan for the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.store.Profile()
		if p.Assessment.Target == nil {
			return fmt.Errorf("no calorie target yet; set weight, height, and age first (trackandtreat profile set)")
		}

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}
		printStep("Generating meal plan for %d kcal/day...", *p.Assessment.Target)
		out, err := client.MealPlan(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Println(renderMarkdown(out))
		return nil
	},
}

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Generate Indian recipes",
}

var recipesConditionCmd = &cobra.Command{
	Use:   "condition <name>",
	Short: "Recipes tailored to a medical condition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecipes(cmd, strings.Join(args, " "), true)
	},
}

var recipesIngredientCmd = &cobra.Command{
	Use:   "ingredient <name>",
	Short: "Recipes built around one ingredient",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecipes(cmd, strings.Join(args, " "), false)
	},
}

func runRecipes(cmd *cobra.Command, subject string, byCondition bool) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	client, err := a.gemini(cmd)
	if err != nil {
		return err
	}

	printStep("Generating recipes...")
	var out string
	if byCondition {
		out, err = client.RecipesByCondition(cmd.Context(), subject)
	} else {
		out, err = client.RecipesByIngredient(cmd.Context(), subject)
	}
	if err != nil {
		return err
	}
	fmt.Println(renderMarkdown(out))
	return nil
}

var reportCmd = &cobra.Command{
	Use:   "report [findings]",
	Short: "Interpret medical report findings",
	Long: `Interpret medical report findings.

Pass the findings as text, or use --file to read them from a PDF or text
file:
  trackandtreat report "HbA1c 7.2%, LDL 160 mg/dL"
  trackandtreat report --file bloodwork.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var findings string
		switch {
		case file != "":
			extracted, err := report.ExtractText(file)
			if err != nil {
				return err
			}
			findings = extracted
		case len(args) > 0:
			findings = strings.Join(args, " ")
		default:
			return fmt.Errorf("provide findings as text or via --file")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}
		printStep("Interpreting report...")
		out, err := client.AnalyzeReport(cmd.Context(), findings)
		if err != nil {
			return err
		}
		fmt.Println(renderMarkdown(out))
		return nil
	},
}

var guidanceCmd = &cobra.Command{
	Use:   "guidance <diagnosis or symptoms>",
	Short: "Nutritional guidance: key nutrients, food sources, interactions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}

		printStep("Generating guidance (3 sections)...")
		bundle, err := client.GuidanceAll(cmd.Context(), input)
		if err != nil {
			return err
		}
		fmt.Println(renderMarkdown(bundle.NutrientsAndAvoid))
		fmt.Println(renderMarkdown(bundle.FoodSources))
		fmt.Println(renderMarkdown(bundle.Interactions))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Web-grounded health search with cited sources",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}
		printStep("Searching...")
		result, err := client.GroundedSearch(cmd.Context(), query)
		if err != nil {
			return err
		}
		fmt.Println(renderMarkdown(result.Text))
		if len(result.Sources) > 0 {
			fmt.Println("Sources:")
			for _, s := range result.Sources {
				fmt.Printf("  - %s (%s)\n", s.Title, s.URI)
			}
		}
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat with the assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client, err := a.gemini(cmd)
		if err != nil {
			return err
		}

		session, err := client.StartChat(cmd.Context(), nil)
		if err != nil {
			return err
		}

		printStep("Chat session started, type quit to exit")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stderr, "you> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			msg := strings.TrimSpace(scanner.Text())
			if msg == "" {
				continue
			}
			if msg == "quit" || msg == "exit" {
				return nil
			}

			reply, err := session.Send(cmd.Context(), msg)
			if err != nil {
				printError("%v", err)
				continue
			}
			fmt.Println(renderMarkdown(reply))
		}
	},
}

func init() {
	reportCmd.Flags().String("file", "", "read findings from a PDF or text file")
	recipesCmd.AddCommand(recipesConditionCmd)
	recipesCmd.AddCommand(recipesIngredientCmd)
}
