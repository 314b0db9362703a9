package domain

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// ParseReservationStatus accepts both canonical and legacy title-case labels.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch s {
	case string(ReservationStatusConfirmed), "Confirmed", "Paid":
		return ReservationStatusConfirmed, true
	case string(ReservationStatusCancelled), "Cancelled":
		return ReservationStatusCancelled, true
	}
	return "", false
}

type Reservation struct {
	ReservationID string
	UserID        string
	FlightID      string
	SeatNumber    string
	FinalPrice    float64
	Status        ReservationStatus
}
