package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/middleware"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/internal/utils"
	"github.com/deveshjhaq/gaddi24x7/services/pricing"
)

// PricingHandler exposes the fare calculator and the admin pricing console
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{pricingUC: pricingUC}
}

// RegisterRoutes registers public fare routes and admin pricing routes
func (h *PricingHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	fare := e.Group("/api/fare")
	fare.GET("/quote", h.GetQuote)
	fare.GET("/estimate", h.GetEstimates)
	fare.GET("/classes", h.ListVehicleClasses)
	fare.GET("/trip-types", h.ListTripTypes)

	admin := e.Group("/api/admin/pricing")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWT), middleware.RequireRole(models.RoleAdmin))
	admin.GET("/classes", h.ListVehicleClasses)
	admin.POST("/classes", h.UpdateVehicleClass)
	admin.GET("/trip-types", h.ListTripTypes)
	admin.POST("/trip-types", h.UpdateTripType)
}

// GetQuote handles GET /api/fare/quote
func (h *PricingHandler) GetQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid quote parameters")
	}
	if req.VehicleClassID == "" {
		return utils.BadRequestResponse(c, "vehicle_class is required")
	}

	quote, err := h.pricingUC.Quote(c.Request().Context(), req)
	if err != nil {
		return h.quoteError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare quote", quote)
}

// GetEstimates handles GET /api/fare/estimate, quoting every vehicle class
// for the rider's trip so the calculator can show them side by side.
func (h *PricingHandler) GetEstimates(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid quote parameters")
	}

	quotes, err := h.pricingUC.QuoteAllClasses(c.Request().Context(), req.TripTypeID, req.DistanceKm, req.DurationMin)
	if err != nil {
		return h.quoteError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare estimates", quotes)
}

// ListVehicleClasses handles GET /api/fare/classes
func (h *PricingHandler) ListVehicleClasses(c echo.Context) error {
	classes, err := h.pricingUC.ListVehicleClasses(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list vehicle classes", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list vehicle classes")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle classes", classes)
}

// ListTripTypes handles GET /api/fare/trip-types
func (h *PricingHandler) ListTripTypes(c echo.Context) error {
	tripTypes, err := h.pricingUC.ListTripTypes(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list trip types", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list trip types")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip types", tripTypes)
}

// UpdateVehicleClass handles POST /api/admin/pricing/classes
func (h *PricingHandler) UpdateVehicleClass(c echo.Context) error {
	var class models.VehicleClass
	if err := c.Bind(&class); err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle class payload")
	}

	if err := h.pricingUC.UpdateVehicleClass(c.Request().Context(), class); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.Info("Vehicle class updated",
		logger.String("class_id", class.ID),
		logger.Float64("price_per_km", class.PricePerKm))
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle class updated", class)
}

// UpdateTripType handles POST /api/admin/pricing/trip-types
func (h *PricingHandler) UpdateTripType(c echo.Context) error {
	var tripType models.TripType
	if err := c.Bind(&tripType); err != nil {
		return utils.BadRequestResponse(c, "Invalid trip type payload")
	}

	if err := h.pricingUC.UpdateTripType(c.Request().Context(), tripType); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.Info("Trip type updated",
		logger.String("trip_type_id", tripType.ID),
		logger.Float64("multiplier", tripType.Multiplier))
	return utils.SuccessResponse(c, http.StatusOK, "Trip type updated", tripType)
}

func (h *PricingHandler) quoteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pricing.ErrUnknownVehicleClass),
		errors.Is(err, pricing.ErrUnknownTripType):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, pricing.ErrInvalidQuoteInput):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error("Failed to compute quote", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute quote")
	}
}
