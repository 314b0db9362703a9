package store

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
)

// Flat-file persistence boundary: one entity collection per file, one
// whitespace-delimited record per line. A missing file means zero records.

const (
	userFile        = "User.txt"
	aircraftFile    = "Aircraft.txt"
	airportFile     = "Airport.txt"
	flightFile      = "Flight.txt"
	reservationFile = "Reservation.txt"
	routeFile       = "Route.txt"

	// FlightTimeLayout is the departure/arrival timestamp format used in
	// flight rows.
	FlightTimeLayout = "2006-01-02T15:04"
)

func readLines(dir, name string, log logger.Logger) []string {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("data file missing, starting with zero records", "file", name)
		} else {
			log.Error("read data file", "file", name, "error", err)
		}
		return nil
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		log.Error("scan data file", "file", name, "error", err)
	}
	return lines
}

func writeLines(dir, name string, lines []string, log logger.Logger) {
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		log.Error("save data file", "file", name, "error", err)
	}
}

func loadUsers(dir string, log logger.Logger) []domain.User {
	var users []domain.User
	for _, line := range readLines(dir, userFile, log) {
		fields := strings.Fields(line)
		// Legacy rows predate the mileage column.
		if len(fields) != 5 && len(fields) != 6 {
			log.Warn("skipping malformed user row", "file", userFile, "fields", len(fields))
			continue
		}
		u := domain.User{
			UserID:         fields[0],
			Password:       fields[1],
			Name:           fields[2],
			PassportNumber: fields[3],
			Phone:          fields[4],
		}
		if len(fields) == 6 {
			mileage, err := strconv.Atoi(fields[5])
			if err != nil || mileage < 0 {
				log.Warn("skipping user row with bad mileage", "file", userFile, "user", u.UserID)
				continue
			}
			u.Mileage = mileage
		}
		users = append(users, u)
	}
	return users
}

func saveUsers(dir string, users []domain.User, log logger.Logger) {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, strings.Join([]string{
			u.UserID, u.Password, u.Name, u.PassportNumber, u.Phone,
			strconv.Itoa(u.Mileage),
		}, " "))
	}
	writeLines(dir, userFile, lines, log)
}

func loadAircraft(dir string, log logger.Logger) []domain.Aircraft {
	var aircraft []domain.Aircraft
	for _, line := range readLines(dir, aircraftFile, log) {
		fields := strings.Fields(line)
		if len(fields) != 5 {
			log.Warn("skipping malformed aircraft row", "file", aircraftFile, "fields", len(fields))
			continue
		}
		total, err1 := strconv.Atoi(fields[2])
		economy, err2 := strconv.Atoi(fields[3])
		business, err3 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil || err3 != nil {
			log.Warn("skipping aircraft row with bad seat counts", "file", aircraftFile, "aircraft", fields[0])
			continue
		}
		a := domain.Aircraft{
			AircraftID:    fields[0],
			ModelName:     fields[1],
			TotalSeats:    total,
			EconomySeats:  economy,
			BusinessSeats: business,
		}
		if err := a.Validate(); err != nil {
			log.Warn("skipping invalid aircraft row", "file", aircraftFile, "aircraft", a.AircraftID, "error", err)
			continue
		}
		aircraft = append(aircraft, a)
	}
	return aircraft
}

func saveAircraft(dir string, aircraft []domain.Aircraft, log logger.Logger) {
	lines := make([]string, 0, len(aircraft))
	for _, a := range aircraft {
		lines = append(lines, strings.Join([]string{
			a.AircraftID, a.ModelName,
			strconv.Itoa(a.TotalSeats), strconv.Itoa(a.EconomySeats), strconv.Itoa(a.BusinessSeats),
		}, " "))
	}
	writeLines(dir, aircraftFile, lines, log)
}

func loadAirports(dir string, log logger.Logger) []domain.Airport {
	var airports []domain.Airport
	for _, line := range readLines(dir, airportFile, log) {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			log.Warn("skipping malformed airport row", "file", airportFile, "fields", len(fields))
			continue
		}
		airports = append(airports, domain.Airport{
			Code:    fields[0],
			Name:    fields[1],
			City:    fields[2],
			Country: fields[3],
		})
	}
	return airports
}

func saveAirports(dir string, airports []domain.Airport, log logger.Logger) {
	lines := make([]string, 0, len(airports))
	for _, a := range airports {
		lines = append(lines, strings.Join([]string{a.Code, a.Name, a.City, a.Country}, " "))
	}
	writeLines(dir, airportFile, lines, log)
}

func loadFlights(dir string, log logger.Logger) []domain.Flight {
	var flights []domain.Flight
	for _, line := range readLines(dir, flightFile, log) {
		fields := strings.Fields(line)
		// The legacy bookable label contains a space, so the status column
		// is everything after the arrival time.
		if len(fields) < 6 {
			log.Warn("skipping malformed flight row", "file", flightFile, "fields", len(fields))
			continue
		}
		departure, err1 := time.Parse(FlightTimeLayout, fields[3])
		arrival, err2 := time.Parse(FlightTimeLayout, fields[4])
		if err1 != nil || err2 != nil {
			log.Warn("skipping flight row with bad timestamps", "file", flightFile, "flight", fields[0])
			continue
		}
		status, ok := domain.ParseFlightStatus(strings.Join(fields[5:], " "))
		if !ok {
			log.Warn("skipping flight row with unknown status", "file", flightFile, "flight", fields[0], "status", fields[5])
			continue
		}
		flights = append(flights, domain.Flight{
			FlightID:      fields[0],
			RouteID:       fields[1],
			AircraftID:    fields[2],
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Status:        status,
		})
	}
	return flights
}

func saveFlights(dir string, flights []domain.Flight, log logger.Logger) {
	lines := make([]string, 0, len(flights))
	for _, f := range flights {
		lines = append(lines, strings.Join([]string{
			f.FlightID, f.RouteID, f.AircraftID,
			f.DepartureTime.Format(FlightTimeLayout),
			f.ArrivalTime.Format(FlightTimeLayout),
			string(f.Status),
		}, " "))
	}
	writeLines(dir, flightFile, lines, log)
}

func loadReservations(dir string, log logger.Logger) []domain.Reservation {
	var reservations []domain.Reservation
	for _, line := range readLines(dir, reservationFile, log) {
		fields := strings.Fields(line)
		if len(fields) != 6 {
			log.Warn("skipping malformed reservation row", "file", reservationFile, "fields", len(fields))
			continue
		}
		price, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			log.Warn("skipping reservation row with bad price", "file", reservationFile, "reservation", fields[0])
			continue
		}
		status, ok := domain.ParseReservationStatus(fields[5])
		if !ok {
			log.Warn("skipping reservation row with unknown status", "file", reservationFile, "reservation", fields[0], "status", fields[5])
			continue
		}
		reservations = append(reservations, domain.Reservation{
			ReservationID: fields[0],
			UserID:        fields[1],
			FlightID:      fields[2],
			SeatNumber:    fields[3],
			FinalPrice:    price,
			Status:        status,
		})
	}
	return reservations
}

func saveReservations(dir string, reservations []domain.Reservation, log logger.Logger) {
	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, strings.Join([]string{
			r.ReservationID, r.UserID, r.FlightID, r.SeatNumber,
			strconv.FormatFloat(r.FinalPrice, 'f', -1, 64),
			string(r.Status),
		}, " "))
	}
	writeLines(dir, reservationFile, lines, log)
}

func loadRoutes(dir string, log logger.Logger) []domain.Route {
	var routes []domain.Route
	for _, line := range readLines(dir, routeFile, log) {
		fields := strings.Fields(line)
		if len(fields) != 5 {
			log.Warn("skipping malformed route row", "file", routeFile, "fields", len(fields))
			continue
		}
		price, err1 := strconv.ParseFloat(fields[3], 64)
		duration, err2 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil {
			log.Warn("skipping route row with bad numbers", "file", routeFile, "route", fields[0])
			continue
		}
		routes = append(routes, domain.Route{
			RouteID:         fields[0],
			Origin:          fields[1],
			Destination:     fields[2],
			BasePrice:       price,
			DurationMinutes: duration,
		})
	}
	return routes
}

func saveRoutes(dir string, routes []domain.Route, log logger.Logger) {
	lines := make([]string, 0, len(routes))
	for _, r := range routes {
		lines = append(lines, strings.Join([]string{
			r.RouteID, r.Origin, r.Destination,
			strconv.FormatFloat(r.BasePrice, 'f', -1, 64),
			strconv.Itoa(r.DurationMinutes),
		}, " "))
	}
	writeLines(dir, routeFile, lines, log)
}
