package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

// walletUC implements the users.WalletUC interface. The balance guard
// lives in the repository so the check and the decrement are one atomic
// statement; this layer validates amounts and logs the ledger movement.
type walletUC struct {
	userRepo users.UserRepo
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(userRepo users.UserRepo) users.WalletUC {
	return &walletUC{userRepo: userRepo}
}

// GetBalance returns the user's current wallet balance in rupees
func (uc *walletUC) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}

// Topup adds funds to a wallet
func (uc *walletUC) Topup(ctx context.Context, userID uuid.UUID, amount int) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, users.ErrInvalidAmount
	}

	tx, err := uc.userRepo.CreditWallet(ctx, userID, amount, models.TransactionWalletRecharge, "")
	if err != nil {
		return nil, err
	}

	logger.Info("Wallet topped up",
		logger.String("user_id", userID.String()),
		logger.Int("amount", amount),
		logger.Int("balance", tx.BalanceAfter))
	return tx, nil
}

// Debit charges a wallet. The balance is never taken below zero; an exact
// balance debits to zero.
func (uc *walletUC) Debit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error {
	if amount <= 0 {
		return users.ErrInvalidAmount
	}

	tx, err := uc.userRepo.DebitWallet(ctx, userID, amount, txType, reference)
	if err != nil {
		return err
	}

	logger.Info("Wallet debited",
		logger.String("user_id", userID.String()),
		logger.String("type", string(txType)),
		logger.Int("amount", amount),
		logger.Int("balance", tx.BalanceAfter))
	return nil
}

// Credit adds funds to a wallet on behalf of the platform
func (uc *walletUC) Credit(ctx context.Context, userID uuid.UUID, amount int, txType models.TransactionType, reference string) error {
	if amount <= 0 {
		return users.ErrInvalidAmount
	}

	tx, err := uc.userRepo.CreditWallet(ctx, userID, amount, txType, reference)
	if err != nil {
		return err
	}

	logger.Info("Wallet credited",
		logger.String("user_id", userID.String()),
		logger.String("type", string(txType)),
		logger.Int("amount", amount),
		logger.Int("balance", tx.BalanceAfter))
	return nil
}

// ListTransactions returns the user's ledger, newest first
func (uc *walletUC) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return uc.userRepo.ListTransactions(ctx, userID)
}
