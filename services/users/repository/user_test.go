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
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

func testTime() time.Time {
	return time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC)
}

func newTestRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &UserRepo{db: sqlx.NewDb(db, "pgx")}, mock
}

func TestDebitWallet(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - \$1`).
		WithArgs(612, sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance"}).AddRow(388))
	mock.ExpectExec(`INSERT INTO transactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.DebitWallet(context.Background(), userID, 612, models.TransactionRidePayment, "")
	require.NoError(t, err)
	assert.Equal(t, 612, tx.Amount)
	assert.Equal(t, 1000, tx.BalanceBefore)
	assert.Equal(t, 388, tx.BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWallet_ExactBalanceReachesZero(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - \$1`).
		WithArgs(340, sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO transactions`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.DebitWallet(context.Background(), userID, 340, models.TransactionRidePayment, "")
	require.NoError(t, err)
	assert.Equal(t, 0, tx.BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWallet_InsufficientBalance(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	// the guarded UPDATE matches no row, the user exists, so the balance
	// did not cover the amount and the wallet stays untouched
	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - \$1`).
		WithArgs(612, sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance"}))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.DebitWallet(context.Background(), userID, 612, models.TransactionRidePayment, "")
	assert.ErrorIs(t, err, users.ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWallet_UserNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance - \$1`).
		WithArgs(100, sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance"}))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.DebitWallet(context.Background(), userID, 100, models.TransactionRidePayment, "")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitWallet_RepeatedBookingChargeIsIdempotent(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()
	bookingID := uuid.New()

	// the ride was already paid for; the retry must return the original
	// ledger row and leave the balance alone
	mock.ExpectBegin()
	existing := sqlmock.NewRows([]string{
		"id", "user_id", "booking_id", "type",
		"amount", "balance_before", "balance_after", "description", "created_at",
	}).AddRow(uuid.New(), userID, bookingID, models.TransactionRidePayment,
		612, 1000, 388, "", testTime())
	mock.ExpectQuery(`SELECT id, user_id, booking_id, type`).
		WithArgs(userID, bookingID, models.TransactionRidePayment).
		WillReturnRows(existing)
	mock.ExpectRollback()

	tx, err := repo.DebitWallet(context.Background(), userID, 612, models.TransactionRidePayment, bookingID.String())
	require.NoError(t, err)
	assert.Equal(t, 612, tx.Amount)
	assert.Equal(t, 388, tx.BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditWallet_ReferencesBooking(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, user_id, booking_id, type`).
		WithArgs(userID, bookingID, models.TransactionDriverEarning).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`UPDATE users SET wallet_balance = wallet_balance \+ \$1`).
		WithArgs(490, sqlmock.AnyArg(), userID).
		WillReturnRows(sqlmock.NewRows([]string{"wallet_balance"}).AddRow(1490))
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(sqlmock.AnyArg(), userID, &bookingID, models.TransactionDriverEarning,
			490, 1000, 1490, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := repo.CreditWallet(context.Background(), userID, 490, models.TransactionDriverEarning, bookingID.String())
	require.NoError(t, err)
	require.NotNil(t, tx.BookingID)
	assert.Equal(t, bookingID, *tx.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT id, phone, full_name`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), userID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestGetByPhone_DriverGetsVehicleDetails(t *testing.T) {
	repo, mock := newTestRepo(t)
	userID := uuid.New()

	userRows := sqlmock.NewRows([]string{
		"id", "phone", "full_name", "email", "role",
		"wallet_balance", "rating", "is_active", "created_at", "updated_at",
	}).AddRow(userID, "+919812345678", "Ravi Kumar", "", models.RoleDriver,
		500, 4.8, true, testTime(), testTime())
	mock.ExpectQuery(`SELECT id, phone, full_name`).
		WithArgs("+919812345678", models.RoleDriver).
		WillReturnRows(userRows)

	infoRows := sqlmock.NewRows([]string{"user_id", "vehicle_class", "vehicle_number", "vehicle_model"}).
		AddRow(userID, "sedan", "DL 3C 4521", "Honda City")
	mock.ExpectQuery(`SELECT user_id, vehicle_class`).
		WithArgs(userID).
		WillReturnRows(infoRows)

	user, err := repo.GetByPhone(context.Background(), "+919812345678", models.RoleDriver)
	require.NoError(t, err)
	require.NotNil(t, user.DriverInfo)
	assert.Equal(t, "sedan", user.DriverInfo.VehicleClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}
