package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"gorm.io/gorm"
)

// MealRecordStore is the append-only log of meal records. The store assigns
// ID and CreatedAt; within one user's namespace CreatedAt never decreases in
// append order, even under concurrent appends.
type MealRecordStore struct {
	db  *gorm.DB
	now func() time.Time

	mu     sync.Mutex
	lastAt map[uint]time.Time
}

func NewMealRecordStore(db *gorm.DB) *MealRecordStore {
	return &MealRecordStore{
		db:     db,
		now:    time.Now,
		lastAt: make(map[uint]time.Time),
	}
}

// stamp assigns the server-side creation time, clamped so a user's records
// never go backwards when the wall clock does.
func (s *MealRecordStore) stamp(userID uint) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.now()
	if last, ok := s.lastAt[userID]; ok && at.Before(last) {
		at = last
	}
	s.lastAt[userID] = at
	return at
}

// Append durably writes one record under the user's namespace and returns it
// with ID and CreatedAt filled in. Nothing partial is ever returned.
func (s *MealRecordStore) Append(ctx context.Context, userID uint, rec models.MealRecord) (*models.MealRecord, error) {
	rec.ID = 0
	rec.UserID = userID
	rec.CreatedAt = s.stamp(userID)

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return &rec, nil
}

// QueryByWindow returns the user's records with CreatedAt in [start, end),
// newest first.
func (s *MealRecordStore) QueryByWindow(ctx context.Context, userID uint, start, end time.Time) ([]models.MealRecord, error) {
	var records []models.MealRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return records, nil
}

// ImageURLs returns every image URL referenced by the user's records. The
// orphan sweep uses it to tell live blobs from leftovers.
func (s *MealRecordStore) ImageURLs(ctx context.Context, userID uint) ([]string, error) {
	var urls []string
	err := s.db.WithContext(ctx).
		Model(&models.MealRecord{}).
		Where("user_id = ?", userID).
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return urls, nil
}
