package domain

type Route struct {
	RouteID         string
	Origin          string
	Destination     string
	BasePrice       float64
	DurationMinutes int
}
