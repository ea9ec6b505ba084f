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
	"github.com/deveshjhaq/gaddi24x7/services/dispatch"
)

// DispatchHandler exposes driver availability and ride offers over HTTP
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// RegisterRoutes registers the driver-facing dispatch routes
func (h *DispatchHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	driver := e.Group("/api/driver")
	driver.Use(middleware.JWTAuthMiddleware(cfg.JWT), middleware.RequireRole(models.RoleDriver))
	driver.POST("/availability", h.SetAvailability)
	driver.POST("/location", h.UpdateLocation)
	driver.GET("/offers", h.GetCurrentOffer)
	driver.POST("/offers/:id/accept", h.AcceptOffer)
	driver.POST("/offers/:id/reject", h.RejectOffer)
}

// SetAvailability handles POST /api/driver/availability
func (h *DispatchHandler) SetAvailability(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid availability payload")
	}

	if err := h.dispatchUC.SetAvailability(c.Request().Context(), driverID, req); err != nil {
		logger.Error("Failed to set availability", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to set availability")
	}

	message := "You are now offline"
	if req.Online {
		message = "You are now online"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// UpdateLocation handles POST /api/driver/location
func (h *DispatchHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)

	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid location payload")
	}

	if err := h.dispatchUC.UpdateLocation(c.Request().Context(), driverID, loc); err != nil {
		if errors.Is(err, dispatch.ErrDriverOffline) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to update location", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// GetCurrentOffer handles GET /api/driver/offers
func (h *DispatchHandler) GetCurrentOffer(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)

	offer, err := h.dispatchUC.GetCurrentOffer(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, dispatch.ErrOfferNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get offer", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get offer")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Current offer", offer)
}

// AcceptOffer handles POST /api/driver/offers/:id/accept
func (h *DispatchHandler) AcceptOffer(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}

	if err := h.dispatchUC.AcceptOffer(c.Request().Context(), driverID, offerID); err != nil {
		return h.offerError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted", nil)
}

// RejectOffer handles POST /api/driver/offers/:id/reject
func (h *DispatchHandler) RejectOffer(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offer id")
	}

	if err := h.dispatchUC.RejectOffer(c.Request().Context(), driverID, offerID); err != nil {
		return h.offerError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer rejected", nil)
}

func (h *DispatchHandler) offerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrOfferNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrRideUnavailable),
		errors.Is(err, dispatch.ErrOfferExpired):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("Offer operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Offer operation failed")
	}
}
