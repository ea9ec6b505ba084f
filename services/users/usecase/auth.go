package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/deveshjhaq/gaddi24x7/internal/pkg/jwt"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/internal/utils"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

const otpLength = 4

// authUC implements the users.AuthUC interface
type authUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	otpRepo  users.OTPRepo
}

// NewAuthUC creates a new auth use case
func NewAuthUC(cfg *models.Config, userRepo users.UserRepo, otpRepo users.OTPRepo) users.AuthUC {
	return &authUC{
		cfg:      cfg,
		userRepo: userRepo,
		otpRepo:  otpRepo,
	}
}

// SendOTP issues a login code for a phone number. There is no SMS gateway
// wired up; outside production the code lands in the logs.
func (uc *authUC) SendOTP(ctx context.Context, phone, role string) error {
	ok, normalized, err := utils.ValidatePhone(phone)
	if !ok {
		return err
	}
	if role != models.RoleCustomer && role != models.RoleDriver {
		return fmt.Errorf("role must be customer or driver")
	}

	code, err := utils.GeneratePasscode(otpLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	otp := &models.OTP{
		Phone:     normalized,
		Code:      code,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.otpRepo.Store(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if uc.cfg.App.Environment != "production" {
		logger.Info("OTP issued",
			logger.String("phone", normalized),
			logger.String("role", role),
			logger.String("otp", code))
	}
	return nil
}

// VerifyOTP exchanges a valid code for a token, creating the account on
// first login
func (uc *authUC) VerifyOTP(ctx context.Context, phone, role, code string) (*models.AuthResponse, error) {
	ok, normalized, err := utils.ValidatePhone(phone)
	if !ok {
		return nil, err
	}
	if role == "" {
		role = models.RoleCustomer
	}

	stored, err := uc.otpRepo.Get(ctx, normalized, role)
	if err != nil {
		return nil, users.ErrInvalidOTP
	}
	if stored.Code != code {
		return nil, users.ErrInvalidOTP
	}
	if err := uc.otpRepo.Delete(ctx, normalized, role); err != nil {
		logger.Warn("Failed to delete used OTP", logger.Err(err))
	}

	user, err := uc.userRepo.GetByPhone(ctx, normalized, role)
	if errors.Is(err, users.ErrUserNotFound) {
		user = &models.User{
			ID:       uuid.New(),
			Phone:    normalized,
			Role:     role,
			IsActive: true,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.Info("User registered",
			logger.String("user_id", user.ID.String()),
			logger.String("role", role))
	} else if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Phone, user.Role, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// AdminLogin authenticates the admin console with email and password
func (uc *authUC) AdminLogin(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if email != uc.cfg.Admin.Email {
		return nil, users.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	adminID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(email))
	token, expiresAt, err := jwtpkg.GenerateToken(adminID, email, models.RoleAdmin, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    adminID.String(),
		Role:      models.RoleAdmin,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile returns a user by id
func (uc *authUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile changes name and email on the caller's own account. Empty
// fields keep their current value.
func (uc *authUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
