package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies wallet ledger entries
type TransactionType string

const (
	TransactionRidePayment     TransactionType = "ride_payment"
	TransactionDriverEarning   TransactionType = "driver_earning"
	TransactionWalletRecharge  TransactionType = "wallet_recharge"
	TransactionCancellationFee TransactionType = "cancellation_fee"
)

// Transaction is one wallet movement. BalanceBefore/After pin down the
// exact effect so the ledger can be audited without replaying it.
type Transaction struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	BookingID     *uuid.UUID      `json:"booking_id,omitempty" db:"booking_id"`
	Type          TransactionType `json:"type" db:"type"`
	Amount        int             `json:"amount" db:"amount"`
	BalanceBefore int             `json:"balance_before" db:"balance_before"`
	BalanceAfter  int             `json:"balance_after" db:"balance_after"`
	Description   string          `json:"description" db:"description"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}
