// Package i18n holds the per-language string tables for user-facing text.
// Unknown languages fall back to English.
package i18n

// Language is a supported display language code.
type Language string

const (
	English  Language = "en"
	Hindi    Language = "hi"
	Gujarati Language = "gu"
)

// Strings is the set of localized strings the core and CLI need.
type Strings struct {
	AppTitle        string
	DashBMICalc     string // assessment placeholder when details are missing
	ReminderMeal    string
	ReminderWater   string
	NoRemindersSet  string
	FeedbackSuccess string
	WaterGoalLabel  string
	ServingsLabel   string
}

var tables = map[Language]Strings{
	English: {
		AppTitle:        "Track and Treat - Personalized Dietetics",
		DashBMICalc:     "Enter details to calculate.",
		ReminderMeal:    "Meal",
		ReminderWater:   "Water",
		NoRemindersSet:  "No reminders set.",
		FeedbackSuccess: "Thank you! Your feedback has been saved.",
		WaterGoalLabel:  "Water Intake",
		ServingsLabel:   "Fruit & Veg Servings",
	},
	Hindi: {
		AppTitle:        "ट्रैक एंड ट्रीट - व्यक्तिगत पोषण",
		DashBMICalc:     "गणना के लिए विवरण दर्ज करें।",
		ReminderMeal:    "भोजन",
		ReminderWater:   "पानी",
		NoRemindersSet:  "कोई अनुस्मारक सेट नहीं है।",
		FeedbackSuccess: "धन्यवाद! आपकी प्रतिक्रिया सहेज ली गई है।",
		WaterGoalLabel:  "पानी की मात्रा",
		ServingsLabel:   "फल और सब्ज़ी की सर्विंग",
	},
	Gujarati: {
		AppTitle:        "ટ્રૅક એન્ડ ટ્રીટ - વ્યક્તિગત પોષણ",
		DashBMICalc:     "ગણતરી માટે વિગતો દાખલ કરો.",
		ReminderMeal:    "ભોજન",
		ReminderWater:   "પાણી",
		NoRemindersSet:  "કોઈ રિમાઇન્ડર સેટ નથી.",
		FeedbackSuccess: "આભાર! તમારો પ્રતિસાદ સાચવવામાં આવ્યો છે.",
		WaterGoalLabel:  "પાણીનું પ્રમાણ",
		ServingsLabel:   "ફળ અને શાકભાજીની સર્વિંગ",
	},
}

// Table returns the string table for lang, falling back to English when the
// language is unknown.
func Table(lang Language) Strings {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[English]
}

// Valid reports whether lang is a supported language code.
func Valid(lang Language) bool {
	_, ok := tables[lang]
	return ok
}
