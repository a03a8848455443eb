package models

import "time"

// WorkoutPlan is an append-only record like MealRecord: created once,
// never edited. Corrections are a new plan.
type WorkoutPlan struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index;not null"`

	Plan             string     `json:"plan" gorm:"not null"`
	BasedOnEquipment StringList `json:"based_on_equipment" gorm:"type:jsonb"`
}
