package services

import (
	"math/rand"
	"strings"
)

// Canned encouragement lines, picked uniformly at random by progress band.
// Cosmetic only — no goal logic depends on them.
var encouragementBands = []struct {
	maxPercent float64
	messages   []string
}{
	{30, []string{
		"You're off to a good start, %s! Keep going",
		"Every step counts — Mimoo is cheering for you",
		"Good to see you here! We're in this together",
	}},
	{60, []string{
		"Look at you, %s! You're on the right track",
		"Keep it up! Mimoo is proud of you",
		"Halfway through the day and you're doing great!",
	}},
	{80, []string{
		"Almost there, %s! One more push",
		"You're so close to your goal today!",
		"Mimoo can already see the finish line",
	}},
	{-1, []string{ // goal reached
		"You did it, %s! Today's goal is yours",
		"Amazing day, %s! Mimoo is celebrating with you",
		"Goal reached — enjoy it, you earned it!",
	}},
}

var noMealsMessages = []string{
	"Mimoo missed you! How about logging your first meal?",
	"Hey %s, I'm here waiting for you! Shall we start the day?",
	"%s, Mimoo is ready to help you today!",
	"Let's log something tasty? Mimoo is curious!",
}

// EncouragementMessage picks a message for the dashboard based on how much of
// the calorie goal was consumed today.
func EncouragementMessage(caloriesConsumed float64, caloriesGoal int, mealsCount int, userName string) string {
	firstName := strings.SplitN(userName, " ", 2)[0]

	if mealsCount == 0 {
		return fill(noMealsMessages[rand.Intn(len(noMealsMessages))], firstName)
	}

	percent := 0.0
	if caloriesGoal > 0 {
		percent = caloriesConsumed / float64(caloriesGoal) * 100
	}
	for _, band := range encouragementBands {
		if band.maxPercent < 0 || percent < band.maxPercent {
			return fill(band.messages[rand.Intn(len(band.messages))], firstName)
		}
	}
	return fill(encouragementBands[len(encouragementBands)-1].messages[0], firstName)
}

func fill(msg, firstName string) string {
	return strings.ReplaceAll(msg, "%s", firstName)
}
