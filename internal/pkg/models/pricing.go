package models

// VehicleClass is a fare category a rider can book. The pricing values are
// reference data owned by the admin console; the fare engine reads them
// fresh on every quote so edits apply to the next request.
type VehicleClass struct {
	ID          string  `json:"id" db:"id" mapstructure:"id"`
	Name        string  `json:"name" db:"name" mapstructure:"name"`
	Capacity    int     `json:"capacity" db:"capacity" mapstructure:"capacity"`
	BasePrice   float64 `json:"base_price" db:"base_price" mapstructure:"base_price"`
	PricePerKm  float64 `json:"price_per_km" db:"price_per_km" mapstructure:"price_per_km"`
	PricePerMin float64 `json:"price_per_min" db:"price_per_min" mapstructure:"price_per_min"`
	MinimumFare float64 `json:"minimum_fare" db:"minimum_fare" mapstructure:"minimum_fare"`
}

// TripType applies a multiplier on top of the floored fare (one-way,
// round-trip, rental tiers).
type TripType struct {
	ID         string  `json:"id" db:"id" mapstructure:"id"`
	Name       string  `json:"name" db:"name" mapstructure:"name"`
	Multiplier float64 `json:"multiplier" db:"multiplier" mapstructure:"multiplier"`
}

// Quote is a derived fare estimate. Amount is whole rupees.
type Quote struct {
	VehicleClassID string  `json:"vehicle_class_id"`
	TripTypeID     string  `json:"trip_type_id"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	Amount         int     `json:"amount"`
	Currency       string  `json:"currency"`
}

// QuoteRequest carries the fare calculator inputs
type QuoteRequest struct {
	VehicleClassID string  `json:"vehicle_class_id" query:"vehicle_class" validate:"required"`
	TripTypeID     string  `json:"trip_type_id" query:"trip_type"`
	DistanceKm     float64 `json:"distance_km" query:"distance_km"`
	DurationMin    float64 `json:"duration_min" query:"duration_min"`
}

// ClassQuote pairs a vehicle class with its quote for the calculator listing
type ClassQuote struct {
	Class VehicleClass `json:"class"`
	Quote Quote        `json:"quote"`
}

// BillItem is one line of an itemized trip bill
type BillItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Bill is the settlement document produced when a ride completes
type Bill struct {
	BookingID string     `json:"booking_id"`
	Items     []BillItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     int        `json:"total"`
	Currency  string     `json:"currency"`
}
