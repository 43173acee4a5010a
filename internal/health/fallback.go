package health

import "fmt"

// SleepFallback is shown when the sleep analysis cannot reach the advisor.
func SleepFallback(in SleepInput) string {
	return fmt.Sprintf(`🧠 **MOCK Sleep Analysis**
- You slept for %s hours with a quality rating of %d/10.
- This indicates moderate sleep. Less than 7 hours or low quality may lead to fatigue and low focus.
- ✅ **Tips**:
  1. Set a regular sleep schedule.
  2. Avoid screens 1 hour before bed.
  3. Try relaxation techniques like meditation.
`, FormatNumber(in.Hours), in.Quality)
}

// BMIFallback is shown when the BMI analysis cannot reach the advisor.
func BMIFallback(result BMIResult) string {
	return fmt.Sprintf(`🧠 **MOCK BMI Result: %s**
- Keep a balanced diet and regular exercise.
- Focus on long-term sustainable health goals.
`, result)
}

// NutritionFallback is shown when the nutrition plan cannot reach the advisor.
func NutritionFallback(in NutritionInput) string {
	return fmt.Sprintf(`🥗 **MOCK Nutrition Plan**
- Calorie Target: %s kcal | Diet: %s | Goal: %s
- 🍽️ **Meals**: 
  - Breakfast: Oats with fruits
  - Lunch: Quinoa salad with lentils
  - Dinner: Stir-fried veggies with tofu
- ⚖️ **Macronutrients**:
  - Carbs: 50%%
  - Proteins: 30%%
  - Fats: 20%%
- ✅ Stay hydrated and track your portions daily.
`, FormatNumber(in.Calories), in.Diet, in.Goal)
}
