package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"github.com/stretchr/testify/assert"
)

func mealWith(cal, prot, carbs, fat float64) models.MealRecord {
	return models.MealRecord{
		Nutrition: models.Nutrition{
			Calories: cal,
			Macronutrients: models.Macronutrients{
				Protein:       prot,
				Carbohydrates: carbs,
				Fat:           fat,
			},
		},
	}
}

func TestAggregateDaily_Empty(t *testing.T) {
	totals := AggregateDaily(nil)
	assert.Equal(t, DailyTotals{}, totals)

	totals = AggregateDaily([]models.MealRecord{})
	assert.Equal(t, DailyTotals{Calories: 0, Protein: 0, Carbohydrates: 0, Fat: 0}, totals)
}

func TestAggregateDaily_SumsEveryField(t *testing.T) {
	records := []models.MealRecord{
		mealWith(95, 0.5, 25, 0.3),
		mealWith(250, 30, 10, 8),
		mealWith(120, 4, 22, 1.5),
	}

	totals := AggregateDaily(records)

	assert.Equal(t, 95+250+120.0, totals.Calories)
	assert.Equal(t, 0.5+30+4.0, totals.Protein)
	assert.Equal(t, 25+10+22.0, totals.Carbohydrates)
	assert.Equal(t, 0.3+8+1.5, totals.Fat)
}

func TestAggregateDaily_OrderIndependent(t *testing.T) {
	records := []models.MealRecord{
		mealWith(95, 0.5, 25, 0.3),
		mealWith(250, 30, 10, 8),
		mealWith(120, 4, 22, 1.5),
		mealWith(640, 42, 55, 28),
	}
	want := AggregateDaily(records)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.MealRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, AggregateDaily(shuffled))
	}
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	at := time.Date(2025, time.March, 3, 17, 45, 12, 0, loc)
	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, loc), start)
	assert.Equal(t, start.Add(24*time.Hour), end)
	assert.Equal(t, loc, start.Location())

	// half-open: a record at exactly `end` belongs to the next day
	assert.True(t, start.Before(end))
	assert.False(t, end.Before(start.Add(24*time.Hour)))
}
