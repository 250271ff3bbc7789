package gemini

import (
	"fmt"
	"strings"

	"github.com/Mny978/track-and-treat/internal/model"
)

// defaultTargetKcal is assumed when the profile has no computed target.
const defaultTargetKcal = 2000

// GuidanceKind selects which nutritional-guidance section to generate.
type GuidanceKind string

const (
	GuidanceNutrientsAndAvoid GuidanceKind = "nutrients_and_avoid"
	GuidanceFoodSources       GuidanceKind = "food_sources"
	GuidanceInteractions      GuidanceKind = "interactions"
)

// Prompt pairs the user prompt with its system instruction.
type Prompt struct {
	Text   string
	System string
}

// chatSystemInstruction steers the free-form assistant conversation.
const chatSystemInstruction = "You are a helpful and friendly AI assistant for the Track and Treat application. " +
	"Provide concise and supportive answers related to health, nutrition, and fitness."

func fmtBMI(v *float64) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtKcal(v *int) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *v)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}

// HealthSummaryPrompt asks for a short, encouraging interpretation of the
// computed assessment.
func HealthSummaryPrompt(a model.Assessment) Prompt {
	text := fmt.Sprintf(`Based on the following health assessment, provide a concise, 2-3 sentence summary in an encouraging and informative tone.
- BMI: %s (%s)
- TDEE (Total Daily Energy Expenditure): %s kcal
- Target Daily Calories for goal: %s kcal

Briefly explain what these numbers mean in simple terms and offer one actionable, general piece of advice based on the BMI status and goals implied by the target calories. Avoid specific medical advice.`,
		fmtBMI(a.BMI), a.BMIStatus, fmtKcal(a.TDEE), fmtKcal(a.Target))

	return Prompt{
		Text: text,
		System: "You are an AI health assistant. Your tone is supportive and motivational. " +
			"You provide simple explanations of health metrics and general wellness tips.",
	}
}

// MealPlanPrompt asks for a 3-day Indian meal plan tailored to the profile.
func MealPlanPrompt(p model.Profile) Prompt {
	target := fmtKcal(p.Assessment.Target)

	userDetails := fmt.Sprintf(`Goal: %s.
Target Daily Calories: %s kcal.
Dietary Preference: %s.
Medical Conditions: %s.
Allergies/Intolerances: %s.
Food Likes/Dislikes: %s.`,
		p.Goal, target, p.DietaryPreference,
		orNone(p.MedicalConditions), orNone(p.Allergies), orNone(p.LikesDislikes))

	text := fmt.Sprintf(`As a specialized Indian dietitian, create a detailed, balanced, and complete 3-Day Meal Plan (Day 1, Day 2, Day 3).
The plan MUST be tailored to the following user profile:
%s

Constraints:
1. All meals must strictly adhere to Indian cuisine (focus on homemade, simple dishes).
2. Total calories for each day must average very close to the target of %s kcal/day.
3. The plan must include 5 eating slots: Early Morning, Breakfast, Mid-Morning Snack, Lunch, Evening Snack, Dinner.
4. Absolutely avoid all ingredients listed in the Allergies/Intolerances section.
5. Provide a short health/cooking note for each meal, including an approximate calorie count for that meal.
6. Structure the output clearly using Markdown headings for days and lists for meals. Do not use markdown tables.`,
		userDetails, target)

	return Prompt{
		Text: text,
		System: "You are an expert Indian dietitian. Generate the meal plan strictly following all constraints. " +
			"Your response should be pure markdown text.",
	}
}

// MealLogPrompt asks for a short compliance analysis of today's meal log.
func MealLogPrompt(entries []model.MealLogEntry, p model.Profile) Prompt {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (~%d kcal)", e.Text, e.Kcal))
	}

	target := defaultTargetKcal
	if p.Assessment.Target != nil {
		target = *p.Assessment.Target
	}
	goal := p.Goal
	if goal == "" {
		goal = model.Maintenance
	}

	text := fmt.Sprintf(`Analyze the following meal log against the user's goal of **%s** and **%d kcal** target.
Meal Log (Today): %s

Provide a concise, 3-point analysis in a friendly, encouraging tone:
1. A brief summary of compliance (e.g., "Good protein intake, slightly high calories").
2. One specific suggestion for improvement/a healthier swap based on the log.
3. A final encouraging sentence.`,
		goal, target, strings.Join(parts, "; "))

	return Prompt{
		Text: text,
		System: "You are a friendly, encouraging AI nutrition coach. Provide a concise, 3-point analysis of the " +
			"user's meal log, using only text, no Markdown list formatting.",
	}
}

// RecipesByConditionPrompt asks for recipes suited to a medical condition.
func RecipesByConditionPrompt(condition string) Prompt {
	text := fmt.Sprintf(`As an expert dietitian, generate 3 unique, simple Indian recipes specifically tailored for a person with the medical condition: **%s**.
For each recipe:
1. Provide the Recipe Name as a main heading (e.g., ### Recipe Name).
2. Create a subheading named "## Ingredients". Below it, list all ingredients as a bulleted list (e.g., "* 1 cup Flour").
3. Create a subheading named "## Method". Below it, list the step-by-step cooking instructions as a numbered list.
4. Create a subheading named "## Health Note". Below it, briefly explain *why* this recipe is suitable for the specified condition.`,
		condition)

	return Prompt{
		Text: text,
		System: "You are a specialized Indian dietitian. Generate the recipe response strictly following the " +
			"requested structured Markdown format.",
	}
}

// RecipesByIngredientPrompt asks for recipes built around one ingredient.
func RecipesByIngredientPrompt(ingredient string) Prompt {
	text := fmt.Sprintf(`Generate 3 unique, innovative, healthy Indian recipe ideas focusing on **%s** as the main ingredient.
For each recipe:
1. Provide the Recipe Name as a main heading (e.g., ### Creative Recipe Name).
2. Create a subheading named "## Ingredients". Below it, list all ingredients as a bulleted list (e.g., "* 1 cup Flour").
3. Create a subheading named "## Method". Below it, list the step-by-step cooking instructions as a numbered list.
4. Create a subheading named "## Chef's Note". Below it, briefly describe the innovative approach.`,
		ingredient)

	return Prompt{
		Text: text,
		System: "You are a creative Indian chef. Generate the recipe response strictly following the requested " +
			"structured Markdown format.",
	}
}

// ReportPrompt asks for a cautious interpretation of medical findings.
func ReportPrompt(findings string) Prompt {
	text := fmt.Sprintf(`Interpret the following medical findings:
FINDINGS: %s

Provide the analysis in this format:
### Diagnosis/Explanation
What do these values usually indicate? (Be general and non-definitive).
### Dietary Implication
What immediate nutritional changes are suggested?
### Disclaimer
(Always include: "This is for informational purposes only and is not a substitute for professional medical advice. Always consult a qualified physician.")`,
		findings)

	return Prompt{
		Text: text,
		System: "You are an AI Medical Assistant. Your response MUST be structured into the three requested " +
			"sections. Be cautious, non-alarmist, and recommend consulting a doctor.",
	}
}

// GuidancePrompt asks for one nutritional-guidance section for the given
// diagnosis or symptoms.
func GuidancePrompt(input string, kind GuidanceKind) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the user input (diagnosis/symptoms: %s), provide the following information:\n", input)

	switch kind {
	case GuidanceFoodSources:
		sb.WriteString(`### Top Indian Food Sources
Generate a list of the 7-10 most beneficial Indian food sources (e.g., specific dals, millets, vegetables) that provide the required nutrients. Include a brief preparation/consumption tip for each.`)
	case GuidanceInteractions:
		sb.WriteString(`### Food & Drug Interactions
Provide information on the most common and critical food and drug interactions relevant to the treatment of this condition. List 3-5 specific medication types and the corresponding foods/nutrients that interact with them. If no common interaction exists, state that clearly. Include a strong disclaimer to consult a doctor.`)
	default: // GuidanceNutrientsAndAvoid
		sb.WriteString(`### Key Nutrients to Focus On
List the 5-7 most critical nutrients (Vitamins, Minerals, etc.) and explain their importance for this condition.
### Foods to Avoid
List the 5-7 most important foods/categories to avoid or limit.`)
	}

	return Prompt{
		Text: sb.String(),
		System: "You are an expert nutritionist. Provide concise, detailed, and structured information tailored " +
			"to the user's request. Focus on an Indian/South Asian context.",
	}
}
