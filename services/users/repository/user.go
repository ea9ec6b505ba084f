package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

// UserRepo implements users.UserRepo backed by PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(client *database.PostgresClient) *UserRepo {
	return &UserRepo{db: client.GetDB()}
}

// Create inserts a new user, with vehicle details for drivers
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone, full_name, email, role, wallet_balance, rating, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.Phone, user.FullName, user.Email, user.Role,
		user.WalletBalance, user.Rating, user.IsActive, user.CreatedAt, user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if user.DriverInfo != nil {
		user.DriverInfo.UserID = user.ID
		infoQuery := `
			INSERT INTO driver_info (user_id, vehicle_class, vehicle_number, vehicle_model)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.db.ExecContext(ctx, infoQuery,
			user.ID, user.DriverInfo.VehicleClass, user.DriverInfo.VehicleNumber, user.DriverInfo.VehicleModel); err != nil {
			return fmt.Errorf("failed to insert driver info: %w", err)
		}
	}
	return nil
}

// GetByID fetches a user, attaching vehicle details for drivers
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, phone, full_name, email, role, wallet_balance, rating, is_active, created_at, updated_at
		FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleDriver {
		if err := r.attachDriverInfo(ctx, &user); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// GetByPhone fetches a user by phone number and role
func (r *UserRepo) GetByPhone(ctx context.Context, phone, role string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, phone, full_name, email, role, wallet_balance, rating, is_active, created_at, updated_at
		FROM users WHERE phone = $1 AND role = $2`
	err := r.db.GetContext(ctx, &user, query, phone, role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}

	if user.Role == models.RoleDriver {
		if err := r.attachDriverInfo(ctx, &user); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// Update persists mutable profile fields
func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	query := `
		UPDATE users SET full_name = $1, email = $2, updated_at = $3
		WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, user.FullName, user.Email, user.UpdatedAt, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return users.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) attachDriverInfo(ctx context.Context, user *models.User) error {
	var info models.DriverInfo
	query := `SELECT user_id, vehicle_class, vehicle_number, vehicle_model FROM driver_info WHERE user_id = $1`
	err := r.db.GetContext(ctx, &info, query, user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get driver info: %w", err)
	}
	user.DriverInfo = &info
	return nil
}

// DebitWallet decrements a wallet only when the balance covers the amount.
// The guard is part of the UPDATE itself: a wallet can reach exactly zero
// but never go below it. Movements referencing a booking are idempotent:
// a repeated charge for the same booking and type returns the original
// ledger row without touching the balance, so a retried settlement cannot
// debit twice.
func (r *UserRepo) DebitWallet(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if existing, err := r.findBookingMovement(ctx, tx, userID, txType, reference); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	var balanceAfter int
	query := `
		UPDATE users SET wallet_balance = wallet_balance - $1, updated_at = $2
		WHERE id = $3 AND wallet_balance >= $1
		RETURNING wallet_balance`
	err = tx.GetContext(ctx, &balanceAfter, query, amount, time.Now(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		// either the user is missing or the balance does not cover it
		var exists bool
		if checkErr := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID); checkErr != nil {
			return nil, fmt.Errorf("failed to check user: %w", checkErr)
		}
		if !exists {
			return nil, users.ErrUserNotFound
		}
		return nil, users.ErrInsufficientBalance
	}
	if err != nil {
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}

	ledger, err := r.appendTransaction(ctx, tx, userID, -amount, balanceAfter, txType, reference)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit debit: %w", err)
	}
	return ledger, nil
}

// CreditWallet increments a wallet and records the ledger row. Like
// DebitWallet, booking-referenced credits are idempotent per booking and
// type.
func (r *UserRepo) CreditWallet(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if existing, err := r.findBookingMovement(ctx, tx, userID, txType, reference); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	var balanceAfter int
	query := `
		UPDATE users SET wallet_balance = wallet_balance + $1, updated_at = $2
		WHERE id = $3
		RETURNING wallet_balance`
	err = tx.GetContext(ctx, &balanceAfter, query, amount, time.Now(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}

	ledger, err := r.appendTransaction(ctx, tx, userID, amount, balanceAfter, txType, reference)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit credit: %w", err)
	}
	return ledger, nil
}

// findBookingMovement looks for an earlier ledger row of the same type for
// the same booking. Returns (nil, nil) when the reference is not a booking
// id or no row exists.
func (r *UserRepo) findBookingMovement(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, txType models.TransactionType, reference string) (*models.Transaction, error) {
	bookingID, err := uuid.Parse(reference)
	if err != nil {
		return nil, nil
	}

	var existing models.Transaction
	query := `
		SELECT id, user_id, booking_id, type, amount, balance_before, balance_after, description, created_at
		FROM transactions WHERE user_id = $1 AND booking_id = $2 AND type = $3`
	err = tx.GetContext(ctx, &existing, query, userID, bookingID, txType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check ledger for booking: %w", err)
	}
	return &existing, nil
}

func (r *UserRepo) appendTransaction(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, delta, balanceAfter int, txType models.TransactionType, reference string) (*models.Transaction, error) {
	amount := delta
	if amount < 0 {
		amount = -amount
	}

	ledger := &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceAfter - delta,
		BalanceAfter:  balanceAfter,
		CreatedAt:     time.Now(),
	}
	if reference != "" {
		if bookingID, err := uuid.Parse(reference); err == nil {
			ledger.BookingID = &bookingID
		} else {
			ledger.Description = reference
		}
	}

	query := `
		INSERT INTO transactions (id, user_id, booking_id, type, amount, balance_before, balance_after, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.ExecContext(ctx, query,
		ledger.ID, ledger.UserID, ledger.BookingID, ledger.Type, ledger.Amount,
		ledger.BalanceBefore, ledger.BalanceAfter, ledger.Description, ledger.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}
	return ledger, nil
}

// ListTransactions returns a user's wallet ledger, newest first
func (r *UserRepo) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	query := `
		SELECT id, user_id, booking_id, type, amount, balance_before, balance_after, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &txs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
