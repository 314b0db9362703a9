package postgres

import (
	"context"
	"errors"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is the persistent Store implementation for server deployments.
// Load/save lifecycle is a no-op: the database is durable on every write.
type PGStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) LoadAll(ctx context.Context) error { return nil }
func (s *PGStore) SaveAll(ctx context.Context) error { return nil }

func (s *PGStore) User(ctx context.Context, userID string) (domain.User, error) {
	row := s.db.QueryRow(ctx, `SELECT user_id, password, name, passport_number, phone, mileage FROM users WHERE user_id=$1`, userID)
	var u domain.User
	if err := row.Scan(&u.UserID, &u.Password, &u.Name, &u.PassportNumber, &u.Phone, &u.Mileage); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *PGStore) AddUser(ctx context.Context, user domain.User) error {
	_, err := s.db.Exec(ctx, `INSERT INTO users (user_id, password, name, passport_number, phone, mileage)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.UserID, user.Password, user.Name, user.PassportNumber, user.Phone, user.Mileage)
	return err
}

func (s *PGStore) UpdateUser(ctx context.Context, user domain.User) error {
	cmd, err := s.db.Exec(ctx, `UPDATE users SET password=$2, name=$3, passport_number=$4, phone=$5, mileage=$6 WHERE user_id=$1`,
		user.UserID, user.Password, user.Name, user.PassportNumber, user.Phone, user.Mileage)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *PGStore) AdjustMileage(ctx context.Context, userID string, delta int) (int, error) {
	row := s.db.QueryRow(ctx, `UPDATE users SET mileage = GREATEST(0, mileage + $2) WHERE user_id=$1 RETURNING mileage`, userID, delta)
	var balance int
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (s *PGStore) Airport(ctx context.Context, code string) (domain.Airport, error) {
	row := s.db.QueryRow(ctx, `SELECT code, name, city, country FROM airports WHERE upper(code)=upper($1)`, code)
	var a domain.Airport
	if err := row.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Airport{}, domain.ErrAirportNotFound
		}
		return domain.Airport{}, err
	}
	return a, nil
}

func (s *PGStore) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := s.db.Query(ctx, `SELECT code, name, city, country FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var airports []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (s *PGStore) Aircraft(ctx context.Context, aircraftID string) (domain.Aircraft, error) {
	row := s.db.QueryRow(ctx, `SELECT aircraft_id, model_name, total_seats, economy_seats, business_seats FROM aircraft WHERE aircraft_id=$1`, aircraftID)
	var a domain.Aircraft
	if err := row.Scan(&a.AircraftID, &a.ModelName, &a.TotalSeats, &a.EconomySeats, &a.BusinessSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Aircraft{}, domain.ErrAircraftNotFound
		}
		return domain.Aircraft{}, err
	}
	return a, nil
}

func (s *PGStore) Route(ctx context.Context, routeID string) (domain.Route, error) {
	row := s.db.QueryRow(ctx, `SELECT route_id, origin, destination, base_price, duration_minutes FROM routes WHERE route_id=$1`, routeID)
	var r domain.Route
	if err := row.Scan(&r.RouteID, &r.Origin, &r.Destination, &r.BasePrice, &r.DurationMinutes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Route{}, domain.ErrRouteNotFound
		}
		return domain.Route{}, err
	}
	return r, nil
}

func (s *PGStore) RoutesByAirports(ctx context.Context, origin, destination string) ([]domain.Route, error) {
	rows, err := s.db.Query(ctx, `SELECT route_id, origin, destination, base_price, duration_minutes FROM routes
		WHERE upper(origin)=upper($1) AND upper(destination)=upper($2)`, origin, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(&r.RouteID, &r.Origin, &r.Destination, &r.BasePrice, &r.DurationMinutes); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (s *PGStore) Flight(ctx context.Context, flightID string) (domain.Flight, error) {
	row := s.db.QueryRow(ctx, `SELECT flight_id, route_id, aircraft_id, departure_time, arrival_time, status FROM flights WHERE flight_id=$1`, flightID)
	var f domain.Flight
	if err := row.Scan(&f.FlightID, &f.RouteID, &f.AircraftID, &f.DepartureTime, &f.ArrivalTime, &f.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Flight{}, domain.ErrFlightNotFound
		}
		return domain.Flight{}, err
	}
	return f, nil
}

func (s *PGStore) FlightsByRoute(ctx context.Context, routeID string) ([]domain.Flight, error) {
	rows, err := s.db.Query(ctx, `SELECT flight_id, route_id, aircraft_id, departure_time, arrival_time, status FROM flights
		WHERE route_id=$1 ORDER BY departure_time`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.FlightID, &f.RouteID, &f.AircraftID, &f.DepartureTime, &f.ArrivalTime, &f.Status); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *PGStore) Reservation(ctx context.Context, reservationID string) (domain.Reservation, error) {
	row := s.db.QueryRow(ctx, `SELECT reservation_id, user_id, flight_id, seat_number, final_price, status FROM reservations WHERE reservation_id=$1`, reservationID)
	var r domain.Reservation
	if err := row.Scan(&r.ReservationID, &r.UserID, &r.FlightID, &r.SeatNumber, &r.FinalPrice, &r.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, err
	}
	return r, nil
}

func (s *PGStore) AddReservation(ctx context.Context, r domain.Reservation) error {
	_, err := s.db.Exec(ctx, `INSERT INTO reservations (reservation_id, user_id, flight_id, seat_number, final_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ReservationID, r.UserID, r.FlightID, r.SeatNumber, r.FinalPrice, r.Status)
	return err
}

func (s *PGStore) UpdateReservation(ctx context.Context, r domain.Reservation) error {
	cmd, err := s.db.Exec(ctx, `UPDATE reservations SET status=$2, final_price=$3 WHERE reservation_id=$1`,
		r.ReservationID, r.Status, r.FinalPrice)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (s *PGStore) ReservationsByFlight(ctx context.Context, flightID string) ([]domain.Reservation, error) {
	return s.queryReservations(ctx, `SELECT reservation_id, user_id, flight_id, seat_number, final_price, status FROM reservations WHERE flight_id=$1`, flightID)
}

func (s *PGStore) ReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.queryReservations(ctx, `SELECT reservation_id, user_id, flight_id, seat_number, final_price, status FROM reservations WHERE user_id=$1`, userID)
}

func (s *PGStore) queryReservations(ctx context.Context, query, arg string) ([]domain.Reservation, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var r domain.Reservation
		if err := rows.Scan(&r.ReservationID, &r.UserID, &r.FlightID, &r.SeatNumber, &r.FinalPrice, &r.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

var _ store.Store = (*PGStore)(nil)
