package services

import (
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"
)

// DailyTotals is derived, never stored: always the coordinate-wise sum of
// one day's records, recomputed on every read.
type DailyTotals struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// AggregateDaily folds records into totals. Pure; empty input gives zeros.
func AggregateDaily(records []models.MealRecord) DailyTotals {
	var t DailyTotals
	for _, r := range records {
		t.Calories += r.Nutrition.Calories
		t.Protein += r.Nutrition.Macronutrients.Protein
		t.Carbohydrates += r.Nutrition.Macronutrients.Carbohydrates
		t.Fat += r.Nutrition.Macronutrients.Fat
	}
	return t
}

// DayWindow returns the half-open interval [midnight, midnight+24h) around t
// in t's location. The day boundary is the caller's local midnight; whether
// that should instead be a server-canonical day is an open product question.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
