package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// User represents a rider or driver account. WalletBalance is whole rupees
// and is only ever changed through the wallet ledger.
type User struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Phone         string      `json:"phone" db:"phone"`
	FullName      string      `json:"full_name" db:"full_name"`
	Email         string      `json:"email,omitempty" db:"email"`
	Role          string      `json:"role" db:"role"`
	WalletBalance int         `json:"wallet_balance" db:"wallet_balance"`
	Rating        float64     `json:"rating" db:"rating"`
	IsActive      bool        `json:"is_active" db:"is_active"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
	DriverInfo    *DriverInfo `json:"driver_info,omitempty"`
}

// DriverInfo holds vehicle details for accounts with the driver role
type DriverInfo struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	VehicleClass  string    `json:"vehicle_class" db:"vehicle_class"`
	VehicleNumber string    `json:"vehicle_number" db:"vehicle_number"`
	VehicleModel  string    `json:"vehicle_model" db:"vehicle_model"`
}

// LoginRequest asks for an OTP to be sent to a phone number
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role"`
}

// VerifyRequest exchanges a phone + OTP pair for a token
type VerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// UpdateProfileRequest carries the fields a user may change on their own
// account. Empty fields are left untouched.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// AdminLoginRequest is the password login for the admin console
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// TopupRequest adds funds to the caller's wallet
type TopupRequest struct {
	Amount int `json:"amount" validate:"required"`
}
