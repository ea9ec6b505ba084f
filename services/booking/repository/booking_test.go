package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/booking"
)

func newTestRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &BookingRepo{db: sqlx.NewDb(db, "pgx")}, mock
}

func sampleBooking() *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		PickupLocation: "Connaught Place",
		DropLocation:   "IGI Airport T3",
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     10,
		DurationMin:    20,
		Status:         models.BookingStatusConfirming,
		StatusVersion:  1,
		QuotedFare:     340,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepo(t)
	b := sampleBooking()

	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByCustomer_NoneIsNotAnError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	b, err := repo.GetActiveByCustomer(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newTestRepo(t)
	b := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), b,
		models.BookingStatusConfirming, models.BookingStatusSearching, "customer", "booking confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusSearching, b.Status)
	assert.Equal(t, 2, b.StatusVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ConflictRollsBack(t *testing.T) {
	repo, mock := newTestRepo(t)
	b := sampleBooking()
	b.Status = models.BookingStatusSearching

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), b,
		models.BookingStatusSearching, models.BookingStatusMatched, "system", "driver accepted")
	assert.ErrorIs(t, err, booking.ErrBookingConflict)
	assert.Equal(t, models.BookingStatusSearching, b.Status)
	assert.Equal(t, 1, b.StatusVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_DisallowedTransition(t *testing.T) {
	repo, mock := newTestRepo(t)
	b := sampleBooking()
	b.Status = models.BookingStatusCompleted

	err := repo.UpdateStatus(context.Background(), b,
		models.BookingStatusCompleted, models.BookingStatusSearching, "system", "")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}
