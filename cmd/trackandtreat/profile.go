package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mny978/track-and-treat/internal/i18n"
	"github.com/Mny978/track-and-treat/internal/model"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a.store.Profile())
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and recompute the assessment",
	Long: `Update profile fields and recompute the assessment.

Examples:
  trackandtreat profile set --name Asha --age 30 --weight 65 --height 165
  trackandtreat profile set --activity Moderate --goal "Muscle Gain"
  trackandtreat profile set --diet Vegan --allergies "peanuts, shellfish"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		p := a.store.Profile()
		flags := cmd.Flags()

		if flags.Changed("name") {
			p.Name, _ = flags.GetString("name")
		}
		if flags.Changed("age") {
			age, _ := flags.GetInt("age")
			if age <= 0 {
				return fmt.Errorf("age must be a positive number")
			}
			p.Age = model.IntPtr(age)
		}
		if flags.Changed("gender") {
			v, _ := flags.GetString("gender")
			p.Gender = model.Gender(v)
		}
		if flags.Changed("weight") {
			w, _ := flags.GetFloat64("weight")
			if w <= 0 {
				return fmt.Errorf("weight must be a positive number of kilograms")
			}
			p.Weight = model.FloatPtr(w)
		}
		if flags.Changed("height") {
			h, _ := flags.GetFloat64("height")
			if h <= 0 {
				return fmt.Errorf("height must be a positive number of centimeters")
			}
			p.Height = model.FloatPtr(h)
		}
		if flags.Changed("activity") {
			v, _ := flags.GetString("activity")
			p.Activity = model.ActivityLevel(v)
		}
		if flags.Changed("diet") {
			v, _ := flags.GetString("diet")
			p.DietaryPreference = model.DietaryPreference(v)
		}
		if flags.Changed("goal") {
			v, _ := flags.GetString("goal")
			p.Goal = model.Goal(v)
		}
		if flags.Changed("conditions") {
			p.MedicalConditions, _ = flags.GetString("conditions")
		}
		if flags.Changed("allergies") {
			p.Allergies, _ = flags.GetString("allergies")
		}
		if flags.Changed("likes") {
			p.LikesDislikes, _ = flags.GetString("likes")
		}
		if flags.Changed("protein") {
			v, _ := flags.GetFloat64("protein")
			p.ProteinGoal = model.FloatPtr(v)
		}
		if flags.Changed("carbs") {
			v, _ := flags.GetFloat64("carbs")
			p.CarbGoal = model.FloatPtr(v)
		}
		if flags.Changed("fat") {
			v, _ := flags.GetFloat64("fat")
			p.FatGoal = model.FloatPtr(v)
		}

		saved := a.store.Save(p)
		printSuccess("Profile saved")
		printAssessment(saved.Assessment)
		return nil
	},
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Show the current health assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printAssessment(a.store.Profile().Assessment)
		return nil
	},
}

var langCmd = &cobra.Command{
	Use:   "lang <en|hi|gu>",
	Short: "Set the display language for this invocation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := i18n.Language(args[0])
		if !i18n.Valid(lang) {
			return fmt.Errorf("unsupported language %q (use en, hi, or gu)", args[0])
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.store.SetLanguage(lang)
		printSuccess("Language set to %s", lang)
		fmt.Println(a.store.Strings().AppTitle)
		return nil
	},
}

func printAssessment(a model.Assessment) {
	if a.BMI == nil {
		printWarning("%s", a.BMIStatus)
		return
	}
	printStatus("BMI", "%.1f (%s)", *a.BMI, a.BMIStatus)
	printStatus("TDEE", "%d kcal", *a.TDEE)
	printStatus("Target", "%d kcal", *a.Target)
}

func init() {
	profileSetCmd.Flags().String("name", "", "display name")
	profileSetCmd.Flags().Int("age", 0, "age in years")
	profileSetCmd.Flags().String("gender", "", "Male, Female, or Other")
	profileSetCmd.Flags().Float64("weight", 0, "weight in kilograms")
	profileSetCmd.Flags().Float64("height", 0, "height in centimeters")
	profileSetCmd.Flags().String("activity", "", "Sedentary, Light, Moderate, High, or Extreme")
	profileSetCmd.Flags().String("diet", "", "Veg, Non-Veg, Vegan, or Jain")
	profileSetCmd.Flags().String("goal", "", "Weight Loss, Weight Gain, Maintenance, or Muscle Gain")
	profileSetCmd.Flags().String("conditions", "", "medical conditions")
	profileSetCmd.Flags().String("allergies", "", "allergies and intolerances")
	profileSetCmd.Flags().String("likes", "", "food likes and dislikes")
	profileSetCmd.Flags().Float64("protein", 0, "protein goal in grams")
	profileSetCmd.Flags().Float64("carbs", 0, "carbohydrate goal in grams")
	profileSetCmd.Flags().Float64("fat", 0, "fat goal in grams")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
