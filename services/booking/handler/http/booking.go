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
	"github.com/deveshjhaq/gaddi24x7/services/booking"
	"github.com/deveshjhaq/gaddi24x7/services/pricing"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

// BookingHandler exposes the rider and driver trip workflow over HTTP
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes registers the rider-facing and driver-facing trip routes
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config) {
	rider := e.Group("/api/bookings")
	rider.Use(middleware.JWTAuthMiddleware(cfg.JWT), middleware.RequireRole(models.RoleCustomer))
	rider.POST("", h.CreateBooking)
	rider.GET("", h.ListBookings)
	rider.GET("/:id", h.GetBooking)
	rider.GET("/:id/events", h.ListBookingEvents)
	rider.POST("/:id/confirm", h.ConfirmBooking)
	rider.POST("/:id/cancel", h.CancelBooking)

	driver := e.Group("/api/driver/rides")
	driver.Use(middleware.JWTAuthMiddleware(cfg.JWT), middleware.RequireRole(models.RoleDriver))
	driver.GET("/:id", h.GetBooking)
	driver.POST("/:id/start", h.StartRide)
	driver.POST("/:id/complete", h.CompleteRide)
	driver.POST("/:id/cancel", h.CancelBooking)
}

// riderBookingResponse is the rider's view of a booking; it is the only
// place the ride passcode is revealed.
type riderBookingResponse struct {
	*models.Booking
	Passcode string `json:"passcode,omitempty"`
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	customerID := c.Get("user_id").(uuid.UUID)

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid booking payload")
	}

	b, err := h.bookingUC.CreateBooking(c.Request().Context(), customerID, req)
	if err != nil {
		return h.bookingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", b)
}

// ConfirmBooking handles POST /api/bookings/:id/confirm
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	customerID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	var req models.ConfirmBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid confirmation payload")
	}
	if req.PaymentMethod != models.PaymentMethodWallet && req.PaymentMethod != models.PaymentMethodCash {
		return utils.BadRequestResponse(c, "payment_method must be wallet or cash")
	}

	b, err := h.bookingUC.ConfirmBooking(c.Request().Context(), customerID, bookingID, req)
	if err != nil {
		return h.bookingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Searching for a driver",
		riderBookingResponse{Booking: b, Passcode: b.Passcode})
}

// GetBooking handles GET /api/bookings/:id and GET /api/driver/rides/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	callerID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	b, err := h.bookingUC.GetBooking(c.Request().Context(), callerID, bookingID)
	if err != nil {
		return h.bookingError(c, err)
	}

	if b.CustomerID == callerID {
		return utils.SuccessResponse(c, http.StatusOK, "Booking",
			riderBookingResponse{Booking: b, Passcode: b.Passcode})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking", b)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(c echo.Context) error {
	customerID := c.Get("user_id").(uuid.UUID)

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), customerID)
	if err != nil {
		logger.Error("Failed to list bookings", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings", bookings)
}

// ListBookingEvents handles GET /api/bookings/:id/events
func (h *BookingHandler) ListBookingEvents(c echo.Context) error {
	callerID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	events, err := h.bookingUC.ListBookingEvents(c.Request().Context(), callerID, bookingID)
	if err != nil {
		return h.bookingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking events", events)
}

// StartRide handles POST /api/driver/rides/:id/start
func (h *BookingHandler) StartRide(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	var req models.StartRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid start payload")
	}

	b, err := h.bookingUC.StartRide(c.Request().Context(), driverID, bookingID, req.Passcode)
	if err != nil {
		return h.bookingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride started", b)
}

// CompleteRide handles POST /api/driver/rides/:id/complete
func (h *BookingHandler) CompleteRide(c echo.Context) error {
	driverID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	result, err := h.bookingUC.CompleteRide(c.Request().Context(), driverID, bookingID)
	if err != nil {
		return h.bookingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", result)
}

// CancelBooking handles the rider and driver cancel routes
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	callerID := c.Get("user_id").(uuid.UUID)
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	var req models.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid cancel payload")
	}

	b, err := h.bookingUC.CancelBooking(c.Request().Context(), callerID, bookingID, req.Reason)
	if err != nil {
		return h.bookingError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", b)
}

func (h *BookingHandler) bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, booking.ErrNotBookingOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrActiveBookingExists),
		errors.Is(err, booking.ErrBookingConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, booking.ErrInvalidPasscode),
		errors.Is(err, booking.ErrInvalidBookingInput),
		errors.Is(err, pricing.ErrUnknownVehicleClass),
		errors.Is(err, pricing.ErrUnknownTripType),
		errors.Is(err, pricing.ErrInvalidQuoteInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrInsufficientBalance):
		return utils.ErrorResponseHandler(c, http.StatusPaymentRequired, err.Error())
	default:
		logger.Error("Booking operation failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Booking operation failed")
	}
}
