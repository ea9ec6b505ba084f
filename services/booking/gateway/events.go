package gateway

import (
	"context"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	natspkg "github.com/deveshjhaq/gaddi24x7/internal/pkg/nats"
)

// BookingGW publishes booking lifecycle events over NATS
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{natsClient: natsClient}
}

// PublishBookingConfirmed announces that a rider confirmed a quote
func (g *BookingGW) PublishBookingConfirmed(_ context.Context, b *models.Booking) error {
	return g.natsClient.PublishJSON(natspkg.SubjectBookingConfirmed, models.BookingConfirmedEvent{
		BookingID:     b.ID.String(),
		CustomerID:    b.CustomerID.String(),
		PaymentMethod: b.PaymentMethod,
		QuotedFare:    b.QuotedFare,
	})
}

// PublishMatchFound announces a driver assignment
func (g *BookingGW) PublishMatchFound(_ context.Context, b *models.Booking) error {
	event := models.MatchFoundEvent{
		BookingID: b.ID.String(),
		Passcode:  b.Passcode,
	}
	if b.Driver != nil {
		event.DriverID = b.Driver.DriverID.String()
	}
	return g.natsClient.PublishJSON(natspkg.SubjectBookingMatched, event)
}

// PublishRideStarted announces a passcode-verified trip start
func (g *BookingGW) PublishRideStarted(_ context.Context, b *models.Booking) error {
	return g.natsClient.PublishJSON(natspkg.SubjectRideStarted, map[string]string{
		"booking_id": b.ID.String(),
	})
}

// PublishRideCompleted announces settlement
func (g *BookingGW) PublishRideCompleted(_ context.Context, b *models.Booking, _ *models.Bill) error {
	event := models.RideCompletedEvent{
		BookingID:     b.ID.String(),
		CustomerID:    b.CustomerID.String(),
		FinalFare:     b.FinalFare,
		PaymentMethod: b.PaymentMethod,
	}
	if b.Driver != nil {
		event.DriverID = b.Driver.DriverID.String()
	}
	return g.natsClient.PublishJSON(natspkg.SubjectRideCompleted, event)
}

// PublishBookingFailed announces that no driver could be found
func (g *BookingGW) PublishBookingFailed(_ context.Context, b *models.Booking) error {
	return g.natsClient.PublishJSON(natspkg.SubjectBookingFailed, map[string]string{
		"booking_id": b.ID.String(),
		"reason":     "no driver available",
	})
}

// PublishBookingCancelled announces a cancellation, carrying who cancelled
// and the fee assessed against the rider (zero within the free window)
func (g *BookingGW) PublishBookingCancelled(_ context.Context, b *models.Booking, actor string, fee int) error {
	return g.natsClient.PublishJSON(natspkg.SubjectBookingCancelled, models.BookingCancelledEvent{
		BookingID: b.ID.String(),
		Actor:     actor,
		Reason:    b.CancelReason,
		Fee:       fee,
	})
}
