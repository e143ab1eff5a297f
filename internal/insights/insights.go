// Package insights derives simple training insights from workout history:
// which hour of day and which pre-workout nutrition show up most often.
package insights

import (
	"fmt"

	"github.com/meltforce/splitfit/internal/models"
)

// Result holds the derived recommendations for a user's history.
type Result struct {
	BestTime      string   `json:"bestTime"`
	BestNutrition string   `json:"bestNutrition"`
	Insights      []string `json:"insights"`
}

// Analyze computes hour-of-day and nutrition histograms over the given
// workouts and picks the most frequent of each. Ties break toward the value
// seen first in the history, so identical inputs always give identical
// output. An empty history yields an empty Result.
func Analyze(workouts []models.Workout) Result {
	var res Result
	if len(workouts) == 0 {
		return res
	}

	hourCounts := make(map[int]int)
	nutritionCounts := make(map[string]int)
	var hourOrder []int
	var nutritionOrder []string

	for _, w := range workouts {
		hour := w.LoggedAt.Hour()
		if hourCounts[hour] == 0 {
			hourOrder = append(hourOrder, hour)
		}
		hourCounts[hour]++

		nutrition := w.Nutrition
		if nutrition == "" {
			nutrition = "Unknown"
		}
		if nutritionCounts[nutrition] == 0 {
			nutritionOrder = append(nutritionOrder, nutrition)
		}
		nutritionCounts[nutrition]++
	}

	bestHour := hourOrder[0]
	for _, h := range hourOrder[1:] {
		if hourCounts[h] > hourCounts[bestHour] {
			bestHour = h
		}
	}
	bestNutrition := nutritionOrder[0]
	for _, n := range nutritionOrder[1:] {
		if nutritionCounts[n] > nutritionCounts[bestNutrition] {
			bestNutrition = n
		}
	}

	res.BestTime = fmt.Sprintf("Best workout time: %d:00", bestHour)
	res.BestNutrition = fmt.Sprintf("Best pre-workout nutrition: %s", bestNutrition)
	res.Insights = append(res.Insights, fmt.Sprintf(
		"You tend to perform better in the %d:00 hour after consuming %s.", bestHour, bestNutrition))
	return res
}

// QualityDistribution counts workouts per reported session quality.
func QualityDistribution(workouts []models.Workout) map[string]int {
	out := make(map[string]int)
	for _, w := range workouts {
		if w.Quality != "" {
			out[w.Quality]++
		}
	}
	return out
}

// SupplementUsage counts how often each supplement appears across sessions.
func SupplementUsage(workouts []models.Workout) map[string]int {
	out := make(map[string]int)
	for _, w := range workouts {
		for _, s := range w.Supplements {
			out[s]++
		}
	}
	return out
}
