package services

import (
	"context"
	"fmt"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"gorm.io/gorm"
)

// WorkoutPlanStore is the append-only log of workout plans. Same rules as
// MealRecordStore: the store assigns ID/CreatedAt and plans are never edited.
type WorkoutPlanStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWorkoutPlanStore(db *gorm.DB) *WorkoutPlanStore {
	return &WorkoutPlanStore{db: db, now: time.Now}
}

func (s *WorkoutPlanStore) Append(ctx context.Context, userID uint, plan string, equipment []string) (*models.WorkoutPlan, error) {
	wp := models.WorkoutPlan{
		UserID:           userID,
		CreatedAt:        s.now(),
		Plan:             plan,
		BasedOnEquipment: equipment,
	}
	if err := s.db.WithContext(ctx).Create(&wp).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return &wp, nil
}

func (s *WorkoutPlanStore) List(ctx context.Context, userID uint) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return plans, nil
}
