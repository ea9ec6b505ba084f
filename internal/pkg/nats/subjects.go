package nats

// Subjects used across the application. Offer subjects carry a driver or
// offer identifier suffix.
const (
	SubjectBookingConfirmed = "booking.confirmed"
	SubjectBookingMatched   = "booking.matched"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingFailed    = "booking.failed"
	SubjectRideStarted      = "ride.started"
	SubjectRideCompleted    = "ride.completed"

	SubjectOfferPrefix       = "dispatch.offer."        // + driverID
	SubjectOfferResultPrefix = "dispatch.offer.result." // + offerID
)
