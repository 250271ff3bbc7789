// Package model defines the core data types shared across the application:
// the user Profile with its derived Assessment, the per-session tracking
// state, and the reminder/feedback records.
package model

// Gender is the user's self-reported gender.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// ActivityLevel is the self-reported physical activity level used to scale
// basal metabolic rate into total daily energy expenditure.
type ActivityLevel string

const (
	Sedentary ActivityLevel = "Sedentary"
	Light     ActivityLevel = "Light"
	Moderate  ActivityLevel = "Moderate"
	High      ActivityLevel = "High"
	Extreme   ActivityLevel = "Extreme"
)

// DietaryPreference narrows which foods meal plans and recipes may use.
type DietaryPreference string

const (
	Veg    DietaryPreference = "Veg"
	NonVeg DietaryPreference = "Non-Veg"
	Vegan  DietaryPreference = "Vegan"
	Jain   DietaryPreference = "Jain"
)

// Goal is the user's current objective; it shifts the daily calorie target.
type Goal string

const (
	WeightLoss  Goal = "Weight Loss"
	WeightGain  Goal = "Weight Gain"
	Maintenance Goal = "Maintenance"
	MuscleGain  Goal = "Muscle Gain"
)

// Assessment is the derived health-metric tuple attached to a Profile.
// All numeric fields are nil until weight, height, and age are known.
type Assessment struct {
	BMI       *float64 `json:"bmi"`
	TDEE      *int     `json:"tdee"`
	Target    *int     `json:"target"`
	BMIStatus string   `json:"bmiStatus"`
}

// Profile holds everything the user has told us about themselves plus the
// derived Assessment. There is exactly one profile per installation.
type Profile struct {
	Name              string            `json:"name"`
	Age               *int              `json:"age"`
	Gender            Gender            `json:"gender"`
	Weight            *float64          `json:"weight"` // kilograms
	Height            *float64          `json:"height"` // centimeters
	Activity          ActivityLevel     `json:"activity"`
	DietaryPreference DietaryPreference `json:"dietaryPreference"`
	Goal              Goal              `json:"goal"`
	MedicalConditions string            `json:"medicalConditions"`
	Allergies         string            `json:"allergies"`
	LikesDislikes     string            `json:"likesDislikes"`
	Assessment        Assessment        `json:"assessment"`
	PhotoURL          *string           `json:"photoUrl,omitempty"`
	ProteinGoal       *float64          `json:"proteinGoal,omitempty"` // grams
	CarbGoal          *float64          `json:"carbGoal,omitempty"`    // grams
	FatGoal           *float64          `json:"fatGoal,omitempty"`     // grams
}

// MealLogEntry is one logged meal within the current session.
type MealLogEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Time string `json:"time"` // display-formatted, e.g. "14:05"
	Kcal int    `json:"kcal"`
}

// TrackingState is the day's ephemeral tracking data. It is deliberately not
// persisted: each session starts from zero.
type TrackingState struct {
	WaterIntake      int            `json:"waterIntake"` // milliliters
	FruitVegServings int            `json:"fruitVegServings"`
	MealLog          []MealLogEntry `json:"mealLog"` // most recent first
}

// ReminderType distinguishes meal reminders from water reminders.
type ReminderType string

const (
	ReminderMeal  ReminderType = "Meal"
	ReminderWater ReminderType = "Water"
)

// Reminder is a daily repeating reminder at a fixed wall-clock time.
type Reminder struct {
	ID   string       `json:"id"`
	Time string       `json:"time"` // "HH:MM"
	Type ReminderType `json:"type"`
}

// FeedbackType categorizes a feedback entry.
type FeedbackType string

const (
	FeedbackBug        FeedbackType = "Bug Report"
	FeedbackSuggestion FeedbackType = "Suggestion"
	FeedbackGeneral    FeedbackType = "General"
)

// FeedbackEntry is a single piece of user feedback.
type FeedbackEntry struct {
	ID        string       `json:"id"`
	Type      FeedbackType `json:"type"`
	Content   string       `json:"content"`
	Timestamp string       `json:"timestamp"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// DefaultProfile returns the fixed fallback profile used on first run and
// whenever persisted state cannot be recovered. The assessment placeholder
// status is filled in by the store from the active string table.
func DefaultProfile(placeholder string) Profile {
	return Profile{
		Name:              "",
		Gender:            Male,
		Activity:          Sedentary,
		DietaryPreference: Veg,
		Goal:              WeightLoss,
		Assessment: Assessment{
			BMIStatus: placeholder,
		},
	}
}

// FloatPtr, IntPtr, and StringPtr are small helpers for the optional fields.
func FloatPtr(v float64) *float64 { return &v }
func IntPtr(v int) *int           { return &v }
func StringPtr(v string) *string  { return &v }
