package services

import (
	"context"
	"testing"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*MealRecordStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewMealRecordStore(db), mock
}

func TestAppend_AssignsIDAndCreatedAt(t *testing.T) {
	store, mock := newMockStore(t)
	at := time.Date(2025, time.June, 10, 12, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "meal_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
	mock.ExpectCommit()

	rec, err := store.Append(context.Background(), 7, models.MealRecord{
		ImageURL:  "https://cdn.example.com/meals/7/x.jpg",
		FoodItems: models.StringList{"apple"},
		Nutrition: appleNutrition,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(41), rec.ID)
	assert.Equal(t, uint(7), rec.UserID)
	assert.Equal(t, at, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_PersistenceFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "meal_records"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	rec, err := store.Append(context.Background(), 7, models.MealRecord{
		ImageURL:  "https://cdn.example.com/meals/7/x.jpg",
		FoodItems: models.StringList{"apple"},
	})
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStamp_NeverDecreasesPerUser(t *testing.T) {
	store := NewMealRecordStore(nil)

	t2 := time.Date(2025, time.June, 10, 12, 0, 1, 0, time.UTC)
	t1 := t2.Add(-time.Second) // clock stepped backwards
	times := []time.Time{t2, t1, t1}
	store.now = func() time.Time {
		next := times[0]
		times = times[1:]
		return next
	}

	first := store.stamp(7)
	second := store.stamp(7)
	assert.Equal(t, t2, first)
	assert.False(t, second.Before(first))

	// another user's namespace is unaffected by the clamp
	other := store.stamp(8)
	assert.Equal(t, t1, other)
}

func TestQueryByWindow_HalfOpenArgsAndOrdering(t *testing.T) {
	store, mock := newMockStore(t)

	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "meal_records" WHERE user_id = \$1 AND created_at >= \$2 AND created_at < \$3 ORDER BY created_at DESC`).
		WithArgs(7, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at", "image_url", "food_items"}).
			AddRow(2, 7, start.Add(20*time.Hour), "https://cdn.example.com/b.jpg", []byte(`["rice"]`)).
			AddRow(1, 7, start.Add(8*time.Hour), "https://cdn.example.com/a.jpg", []byte(`["apple"]`)))

	records, err := store.QueryByWindow(context.Background(), 7, start, end)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.Equal(t, models.StringList{"rice"}, records[0].FoodItems)
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByWindow_LoadFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "meal_records"`).
		WillReturnError(assert.AnError)

	_, err := store.QueryByWindow(context.Background(), 7, time.Now().Add(-time.Hour), time.Now())
	assert.ErrorIs(t, err, ErrLoadFailure)
}
