package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/users"
	"github.com/deveshjhaq/gaddi24x7/services/users/mocks"
)

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewWalletUC(userRepo)

	userID := uuid.New()
	userRepo.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, WalletBalance: 750}, nil)

	balance, err := uc.GetBalance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 750, balance)
}

func TestTopup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewWalletUC(userRepo)

	userID := uuid.New()
	userRepo.EXPECT().
		CreditWallet(gomock.Any(), userID, 500, models.TransactionWalletRecharge, "").
		Return(&models.Transaction{Amount: 500, BalanceBefore: 100, BalanceAfter: 600}, nil)

	tx, err := uc.Topup(context.Background(), userID, 500)
	require.NoError(t, err)
	assert.Equal(t, 600, tx.BalanceAfter)
}

func TestTopup_NonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewWalletUC(mocks.NewMockUserRepo(ctrl))

	_, err := uc.Topup(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, users.ErrInvalidAmount)

	_, err = uc.Topup(context.Background(), uuid.New(), -100)
	assert.ErrorIs(t, err, users.ErrInvalidAmount)
}

func TestDebit_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewWalletUC(userRepo)

	userID := uuid.New()
	userRepo.EXPECT().
		DebitWallet(gomock.Any(), userID, 612, models.TransactionRidePayment, "ref").
		Return(nil, users.ErrInsufficientBalance)

	err := uc.Debit(context.Background(), userID, 612, models.TransactionRidePayment, "ref")
	assert.ErrorIs(t, err, users.ErrInsufficientBalance)
}

func TestDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewWalletUC(userRepo)

	userID := uuid.New()
	userRepo.EXPECT().
		DebitWallet(gomock.Any(), userID, 340, models.TransactionRidePayment, "ref").
		Return(&models.Transaction{Amount: 340, BalanceBefore: 340, BalanceAfter: 0}, nil)

	err := uc.Debit(context.Background(), userID, 340, models.TransactionRidePayment, "ref")
	assert.NoError(t, err)
}
