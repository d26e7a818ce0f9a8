package mealgen

const systemPrompt = "You are a helpful meal planning assistant specializing in Indian vegetarian cuisine. " +
	"Provide meal plans in the exact format requested."

const weekPrompt = `Give a meal plan for vegetarian Indian cuisine for breakfast lunch and dinner which can be prepared in at most an hour. Please provide exactly 7 days of meals in this format:

Monday:
Breakfast: [specific meal name]
Lunch: [specific meal name]
Dinner: [specific meal name]
Snacks: [snack1, snack2]

Tuesday:
Breakfast: [specific meal name]
Lunch: [specific meal name]
Dinner: [specific meal name]
Snacks: [snack1, snack2]

[Continue for all 7 days: Wednesday, Thursday, Friday, Saturday, Sunday]

Requirements:
- All meals should be vegetarian Indian cuisine
- Each meal should take maximum 1 hour to prepare
- Provide variety across the week
- Include 2-3 healthy snack options per day
- Make meals family-friendly and appealing`
