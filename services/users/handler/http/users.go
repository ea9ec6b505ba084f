package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/middleware"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/internal/utils"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

// UserHandler exposes authentication, profile and wallet routes
type UserHandler struct {
	authUC   users.AuthUC
	walletUC users.WalletUC
}

// NewUserHandler creates a new user HTTP handler
func NewUserHandler(authUC users.AuthUC, walletUC users.WalletUC) *UserHandler {
	return &UserHandler{authUC: authUC, walletUC: walletUC}
}

// RegisterRoutes registers auth, profile and wallet routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	auth := e.Group("/api/auth")
	auth.POST("/otp", h.SendOTP)
	auth.POST("/verify", h.VerifyOTP)
	auth.POST("/admin/login", h.AdminLogin)

	me := e.Group("/api/me")
	me.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	me.GET("", h.GetProfile)
	me.PUT("", h.UpdateProfile)
	me.GET("/wallet", h.GetWallet)
	me.POST("/wallet/topup", h.TopupWallet)
	me.GET("/wallet/transactions", h.ListTransactions)
}

// SendOTP handles POST /api/auth/otp
func (h *UserHandler) SendOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid login payload")
	}
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Phone, req.Role); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", nil)
}

// VerifyOTP handles POST /api/auth/verify
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req struct {
		models.VerifyRequest
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid verification payload")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.Role, req.OTP)
	if err != nil {
		if errors.Is(err, users.ErrInvalidOTP) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("OTP verification failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Verification failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// AdminLogin handles POST /api/auth/admin/login
func (h *UserHandler) AdminLogin(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid login payload")
	}

	resp, err := h.authUC.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Admin login failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// GetProfile handles GET /api/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get profile", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile", user)
}

// UpdateProfile handles PUT /api/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid profile payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to update profile", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// GetWallet handles GET /api/me/wallet
func (h *UserHandler) GetWallet(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	balance, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get wallet", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get wallet")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet balance", map[string]int{"balance": balance})
}

// TopupWallet handles POST /api/me/wallet/topup
func (h *UserHandler) TopupWallet(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	var req models.TopupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid topup payload")
	}

	tx, err := h.walletUC.Topup(c.Request().Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, users.ErrInvalidAmount) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Topup failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Topup failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Wallet topped up", tx)
}

// ListTransactions handles GET /api/me/wallet/transactions
func (h *UserHandler) ListTransactions(c echo.Context) error {
	userID := c.Get("user_id").(uuid.UUID)

	txs, err := h.walletUC.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transactions", txs)
}
