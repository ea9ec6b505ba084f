package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
)

var (
	// ErrUserNotFound means no user exists for the given id or phone
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidOTP means the submitted code does not match the stored one
	// or has expired
	ErrInvalidOTP = errors.New("invalid or expired OTP")
	// ErrInvalidCredentials covers failed admin logins
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInsufficientBalance means a debit would take the wallet below
	// zero. The wallet is left untouched when this is returned.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	// ErrInvalidAmount covers non-positive debit, credit and topup amounts
	ErrInvalidAmount = errors.New("amount must be positive")
)

// AuthUC handles phone OTP login for riders and drivers and password login
// for the admin console
type AuthUC interface {
	SendOTP(ctx context.Context, phone, role string) error
	VerifyOTP(ctx context.Context, phone, role, code string) (*models.AuthResponse, error)
	AdminLogin(ctx context.Context, username, password string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error)
}

// WalletUC manages wallet balances and the transaction ledger
type WalletUC interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int, error)
	Topup(ctx context.Context, userID uuid.UUID, amount int) (*models.Transaction, error)
	Debit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error
	Credit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// UserRepo persists users, wallets and the transaction ledger
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByPhone(ctx context.Context, phone, role string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// DebitWallet decrements the balance only when it covers the amount,
	// recording a ledger row in the same transaction. Returns
	// ErrInsufficientBalance without touching the wallet otherwise.
	DebitWallet(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) (*models.Transaction, error)
	CreditWallet(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// OTPRepo stores login codes with a TTL
type OTPRepo interface {
	Store(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, phone, role string) (*models.OTP, error)
	Delete(ctx context.Context, phone, role string) error
}
