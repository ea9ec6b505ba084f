package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/booking"
)

// BookingRepo implements booking.BookingRepo backed by PostgreSQL
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(client *database.PostgresClient) *BookingRepo {
	return &BookingRepo{db: client.GetDB()}
}

// bookingRow flattens the driver assignment into nullable columns on the
// bookings table.
type bookingRow struct {
	models.Booking
	DriverID      uuid.NullUUID   `db:"driver_id"`
	DriverName    sql.NullString  `db:"driver_name"`
	DriverPhone   sql.NullString  `db:"driver_phone"`
	DriverRating  sql.NullFloat64 `db:"driver_rating"`
	VehicleNumber sql.NullString  `db:"vehicle_number"`
	VehicleModel  sql.NullString  `db:"vehicle_model"`
	PhotoURL      sql.NullString  `db:"photo_url"`
}

func (r *bookingRow) toModel() *models.Booking {
	b := r.Booking
	if r.DriverID.Valid {
		b.Driver = &models.DriverAssignment{
			DriverID:      r.DriverID.UUID,
			Name:          r.DriverName.String,
			Phone:         r.DriverPhone.String,
			Rating:        r.DriverRating.Float64,
			VehicleNumber: r.VehicleNumber.String,
			VehicleModel:  r.VehicleModel.String,
			PhotoURL:      r.PhotoURL.String,
		}
	}
	return &b
}

const bookingColumns = `id, customer_id, pickup_location, drop_location, pickup_lat,
	pickup_lng, vehicle_class_id, trip_type_id, distance_km, duration_min,
	payment_method, status, status_version,
	passcode, quoted_fare, final_fare, created_at, confirmed_at, matched_at,
	started_at, completed_at, cancelled_at, cancel_reason, updated_at,
	driver_id, driver_name, driver_phone, driver_rating, vehicle_number,
	vehicle_model, photo_url`

// Create inserts a new booking in its initial status
func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, pickup_location, drop_location, pickup_lat, pickup_lng,
			vehicle_class_id, trip_type_id, distance_km, duration_min, payment_method,
			status, status_version, passcode, quoted_fare, final_fare, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.CustomerID, b.PickupLocation, b.DropLocation, b.PickupLat, b.PickupLng,
		b.VehicleClassID, b.TripTypeID, b.DistanceKm, b.DurationMin, b.PaymentMethod,
		b.Status, b.StatusVersion, b.Passcode, b.QuotedFare, b.FinalFare, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID fetches one booking
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var row bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return row.toModel(), nil
}

// GetActiveByCustomer returns the rider's booking in a non-terminal
// status, or nil when there is none.
func (r *BookingRepo) GetActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Booking, error) {
	var row bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE customer_id = $1 AND status NOT IN ($2, $3, $4)
		ORDER BY created_at DESC LIMIT 1`
	err := r.db.GetContext(ctx, &row, query, customerID,
		models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusFailed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}
	return row.toModel(), nil
}

// ListByCustomer returns the rider's booking history, newest first
func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	var rows []bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE customer_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(rows))
	for i := range rows {
		bookings = append(bookings, *rows[i].toModel())
	}
	return bookings, nil
}

// UpdateStatus moves a booking between statuses under an optimistic guard
// on the current status and version, persists the mutable fields, and
// appends the transition to the event log in the same transaction.
func (r *BookingRepo) UpdateStatus(ctx context.Context, b *models.Booking, from, to models.BookingStatus, actor, note string) error {
	if !models.CanTransition(from, to) {
		return booking.ErrInvalidTransition
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var driverID interface{}
	var driverName, driverPhone, vehicleNumber, vehicleModel, photoURL interface{}
	var driverRating interface{}
	if b.Driver != nil {
		driverID = b.Driver.DriverID
		driverName = b.Driver.Name
		driverPhone = b.Driver.Phone
		driverRating = b.Driver.Rating
		vehicleNumber = b.Driver.VehicleNumber
		vehicleModel = b.Driver.VehicleModel
		photoURL = b.Driver.PhotoURL
	}

	now := time.Now()
	query := `
		UPDATE bookings SET
			status = $1, status_version = status_version + 1,
			payment_method = $2, passcode = $3, quoted_fare = $4, final_fare = $5,
			confirmed_at = $6, matched_at = $7, started_at = $8, completed_at = $9,
			cancelled_at = $10, cancel_reason = $11, updated_at = $12,
			driver_id = $13, driver_name = $14, driver_phone = $15,
			driver_rating = $16, vehicle_number = $17, vehicle_model = $18, photo_url = $19
		WHERE id = $20 AND status = $21 AND status_version = $22`

	res, err := tx.ExecContext(ctx, query,
		to, b.PaymentMethod, b.Passcode, b.QuotedFare, b.FinalFare,
		b.ConfirmedAt, b.MatchedAt, b.StartedAt, b.CompletedAt,
		b.CancelledAt, b.CancelReason, now,
		driverID, driverName, driverPhone, driverRating, vehicleNumber, vehicleModel, photoURL,
		b.ID, from, b.StatusVersion)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return booking.ErrBookingConflict
	}

	eventQuery := `
		INSERT INTO booking_events (booking_id, from_status, to_status, actor, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, eventQuery, b.ID, from, to, actor, note, now); err != nil {
		return fmt.Errorf("failed to append booking event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	b.Status = to
	b.StatusVersion++
	b.UpdatedAt = now
	return nil
}

// ListEvents returns the transition log for a booking, oldest first
func (r *BookingRepo) ListEvents(ctx context.Context, bookingID uuid.UUID) ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	query := `
		SELECT id, booking_id, from_status, to_status, actor, note, created_at
		FROM booking_events WHERE booking_id = $1 ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &events, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to list booking events: %w", err)
	}
	return events, nil
}
