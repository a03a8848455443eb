package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockPlanStore(t *testing.T) (*WorkoutPlanStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewWorkoutPlanStore(db), mock
}

func TestWorkoutPlanAppend(t *testing.T) {
	store, mock := newMockPlanStore(t)
	at := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "workout_plans"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	plan, err := store.Append(context.Background(), 7, "3x10 goblet squats", []string{"kettlebell"})
	require.NoError(t, err)

	assert.Equal(t, uint(3), plan.ID)
	assert.Equal(t, uint(7), plan.UserID)
	assert.Equal(t, at, plan.CreatedAt)
	assert.Equal(t, "3x10 goblet squats", plan.Plan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutPlanAppend_PersistenceFailure(t *testing.T) {
	store, mock := newMockPlanStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "workout_plans"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := store.Append(context.Background(), 7, "plan", nil)
	assert.ErrorIs(t, err, ErrPersistenceFailure)
}
