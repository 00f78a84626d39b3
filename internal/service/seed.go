package service

import "fitcoach/coach-app/internal/domain"

// defaultExercises is the catalog loaded on first run. Seeded entries have
// Custom=false and cannot be deleted through the API.
var defaultExercises = []domain.Exercise{
	{
		Name:      "Barbell Back Squat",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Barbell",
		Muscles:   []string{"Quads", "Glutes", "Core"},
		Instructions: "Stand with feet shoulder-width apart. Bar rests on upper back. " +
			"Bend knees and hips to lower down, keeping chest up. Drive through heels to stand.",
	},
	{
		Name:      "Bench Press",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Barbell",
		Muscles:   []string{"Chest", "Triceps", "Shoulders"},
		Instructions: "Lie on bench, grip bar slightly wider than shoulders. " +
			"Lower bar to chest, then press up to full extension.",
	},
	{
		Name:      "Deadlift",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Barbell",
		Muscles:   []string{"Back", "Glutes", "Hamstrings"},
		Instructions: "Stand with feet hip-width, bar over midfoot. Hinge at hips, grip bar. " +
			"Drive through floor, keeping back flat, until standing.",
	},
	{
		Name:      "Pull-ups",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Pull-up Bar",
		Muscles:   []string{"Back", "Biceps"},
		Instructions: "Hang from bar with overhand grip. Pull body up until chin clears bar. " +
			"Lower with control.",
	},
	{
		Name:      "Overhead Press",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Barbell",
		Muscles:   []string{"Shoulders", "Triceps"},
		Instructions: "Stand with bar at shoulders. Press overhead to full lockout. " +
			"Lower with control.",
	},
	{
		Name:      "Barbell Row",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Barbell",
		Muscles:   []string{"Back", "Biceps"},
		Instructions: "Hinge forward at hips, back flat. Pull bar to lower chest, squeezing " +
			"shoulder blades. Lower with control.",
	},
	{
		Name:      "Lunges",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Dumbbells",
		Muscles:   []string{"Quads", "Glutes"},
		Instructions: "Step forward into a lunge, lowering back knee toward floor. " +
			"Push through front heel to return.",
	},
	{
		Name:      "Dumbbell Curl",
		Category:  domain.CategoryStrength,
		Type:      domain.TypeWeight,
		Equipment: "Dumbbells",
		Muscles:   []string{"Biceps"},
		Instructions: "Stand with dumbbells at sides, palms forward. Curl weights to shoulders, " +
			"keeping elbows fixed. Lower slowly.",
	},
	{
		Name:      "Treadmill Run",
		Category:  domain.CategoryCardio,
		Type:      domain.TypeCardio,
		Equipment: "Treadmill",
		Muscles:   []string{"Legs", "Cardio"},
		Instructions: "Maintain steady pace at conversational effort. " +
			"Increase speed or incline to progress.",
	},
	{
		Name:      "Rowing Machine",
		Category:  domain.CategoryCardio,
		Type:      domain.TypeCardio,
		Equipment: "Rower",
		Muscles:   []string{"Back", "Legs", "Cardio"},
		Instructions: "Drive with legs first, then lean back and pull handle to ribs. " +
			"Reverse the motion to return.",
	},
	{
		Name:      "Plank",
		Category:  domain.CategoryCore,
		Type:      domain.TypeTimed,
		Equipment: "None",
		Muscles:   []string{"Core", "Shoulders"},
		Instructions: "Forearms on floor, body in straight line from head to heels. " +
			"Brace core and hold.",
	},
	{
		Name:      "Hamstring Stretch",
		Category:  domain.CategoryFlexibility,
		Type:      domain.TypeTimed,
		Equipment: "None",
		Muscles:   []string{"Hamstrings"},
		Instructions: "Sit with one leg extended. Hinge at hips toward toes until a gentle " +
			"stretch is felt. Hold and breathe.",
	},
}
