package domain

import "time"

type FlightStatus string

const (
	// FlightStatusScheduled is the only status open for booking.
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusClosed    FlightStatus = "CLOSED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

// ParseFlightStatus normalizes stored status labels to the canonical enum.
// Legacy data used both "Scheduled" and the Korean "예약 가능" for the bookable
// state; both map to FlightStatusScheduled.
func ParseFlightStatus(s string) (FlightStatus, bool) {
	switch s {
	case string(FlightStatusScheduled), "Scheduled", "예약 가능":
		return FlightStatusScheduled, true
	case string(FlightStatusClosed), "Closed":
		return FlightStatusClosed, true
	case string(FlightStatusCancelled), "Cancelled":
		return FlightStatusCancelled, true
	}
	return "", false
}

type Flight struct {
	FlightID      string
	RouteID       string
	AircraftID    string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        FlightStatus
}

func (f Flight) Bookable() bool {
	return f.Status == FlightStatusScheduled
}

// SeatInventory is the derived seat count snapshot for one flight.
type SeatInventory struct {
	Total     int `json:"total"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`
}
