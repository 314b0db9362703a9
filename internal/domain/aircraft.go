package domain

type Aircraft struct {
	AircraftID    string
	ModelName     string
	TotalSeats    int
	EconomySeats  int
	BusinessSeats int
}

// Validate checks the seat split against the declared total.
func (a Aircraft) Validate() error {
	if a.TotalSeats <= 0 {
		return ErrInvalidSeatConfig
	}
	if a.EconomySeats+a.BusinessSeats != a.TotalSeats {
		return ErrInvalidSeatConfig
	}
	return nil
}
