package health

import "fmt"

const (
	sleepRole     = "You are a sleep specialist with 20 years experience."
	bmiRole       = "You are a certified nutritionist. Analyze BMI and provide health recommendations."
	nutritionRole = "You are a certified nutritionist with expertise in meal planning."
)

func sleepPrompt(in SleepInput) string {
	return fmt.Sprintf(`User slept %s hours last night and rates sleep quality as %d/10.
Analyze and provide recommendations. Include:
- Sleep quality assessment
- Health implications
- 3 actionable tips for improvement
`, FormatNumber(in.Hours), in.Quality)
}

func bmiPrompt(result BMIResult) string {
	return fmt.Sprintf("BMI: %.1f. Categorize and advise on:", result.Value)
}

func bmiPreamble(result BMIResult) string {
	return fmt.Sprintf("BMI Result: %.1f\n", result.Value)
}

func nutritionPrompt(in NutritionInput) string {
	return fmt.Sprintf(`User has a daily calorie intake of %s calories, prefers %s diet, and aims to %s.
Provide a detailed nutrition plan including:
- Recommended meals for the day
- Macronutrient breakdown (carbs, proteins, fats)
- Tips to achieve the health goal
`, FormatNumber(in.Calories), in.Diet, in.Goal)
}
