package services

import (
	"fmt"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"
)

type eventDeps struct {
	rt *RealtimeHub
	ps *PushService
}

var _events eventDeps

func InitEventDeps(rt *RealtimeHub, ps *PushService) {
	_events = eventDeps{rt: rt, ps: ps}
}

// EmitMealLogged notifies the user's live dashboards and devices after a
// successful pipeline run. Best-effort; safe to call anywhere.
func EmitMealLogged(userID uint, rec *models.MealRecord, totals DailyTotals) {
	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":   "meal.logged",
			"record": rec,
			"totals": totals,
		})
	}
	if _events.ps != nil {
		_events.ps.PushToUser(userID, "Meal logged",
			fmt.Sprintf("%.0f kcal added to today", rec.Nutrition.Calories),
			map[string]string{"recordId": fmt.Sprintf("%d", rec.ID)},
		)
	}
}
