package loyalty

import (
	"context"
	"math"

	"github.com/daehyun-dev/skyreserve/internal/store"
)

// DefaultRate is the mileage earn rate: 5% of the final price.
const DefaultRate = 0.05

// Ledger maintains per-user mileage balances. Accruals and reversals write
// through to the store immediately.
type Ledger struct {
	store store.Store
	rate  float64
}

func NewLedger(st store.Store, rate float64) *Ledger {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Ledger{store: st, rate: rate}
}

// Accrue credits floor(price*rate) points and returns the amount earned.
// The balance update is a single atomic store adjustment: booking only
// serializes per flight, so the same user may accrue from two flights at
// once.
func (l *Ledger) Accrue(ctx context.Context, userID string, price float64) (int, error) {
	earned := l.points(price)
	if _, err := l.store.AdjustMileage(ctx, userID, earned); err != nil {
		return 0, err
	}
	return earned, nil
}

// Reverse debits the points earned for price, recomputed from the stored
// final price rather than a recorded accrual. The balance clamps at zero,
// which can under-reverse when the balance was already spent down.
func (l *Ledger) Reverse(ctx context.Context, userID string, price float64) (int, error) {
	deducted := l.points(price)
	if _, err := l.store.AdjustMileage(ctx, userID, -deducted); err != nil {
		return 0, err
	}
	return deducted, nil
}

func (l *Ledger) points(price float64) int {
	return int(math.Floor(price * l.rate))
}
