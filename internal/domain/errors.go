package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user id already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrFlightNotBookable   = errors.New("flight is not open for booking")
	ErrFlightFull          = errors.New("flight is fully booked")
	ErrSeatTaken           = errors.New("seat is already reserved")
	ErrAircraftNotFound    = errors.New("aircraft not found")
	ErrAirportNotFound     = errors.New("airport not found")
	ErrRouteNotFound       = errors.New("route not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotReservationOwner = errors.New("only the reservation owner may cancel")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrInvalidSeatConfig   = errors.New("economy and business seats must sum to total seats")
	ErrInvalidDate         = errors.New("invalid date")
)
