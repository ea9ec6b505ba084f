package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

const (
	otpKeyPrefix = "auth:otp:" // + role + ":" + phone
	otpTTL       = 5 * time.Minute
)

// OTPRepo implements users.OTPRepo backed by Redis. The key TTL is the
// code's expiry.
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

func otpKey(phone, role string) string {
	return otpKeyPrefix + role + ":" + phone
}

// Store saves a login code with the standard TTL, replacing any earlier one
func (r *OTPRepo) Store(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}
	if err := r.redisClient.Set(ctx, otpKey(otp.Phone, otp.Role), data, otpTTL); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Get returns the live code for a phone and role
func (r *OTPRepo) Get(ctx context.Context, phone, role string) (*models.OTP, error) {
	val, err := r.redisClient.Get(ctx, otpKey(phone, role))
	if errors.Is(err, redis.Nil) {
		return nil, users.ErrInvalidOTP
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}

// Delete removes a used code
func (r *OTPRepo) Delete(ctx context.Context, phone, role string) error {
	return r.redisClient.Delete(ctx, otpKey(phone, role))
}
