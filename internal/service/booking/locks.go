package booking

import "sync"

// flightLocks hands out one mutex per flight id so that the availability
// check and the reservation insert are atomic with respect to other
// bookings on the same flight. Different flights proceed concurrently.
type flightLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFlightLocks() *flightLocks {
	return &flightLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *flightLocks) forFlight(flightID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[flightID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[flightID] = lock
	}
	return lock
}
