package email

import (
	"context"
	"fmt"

	"github.com/daehyun-dev/skyreserve/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send notification to %s about %s for flight %s seat %s\n", event.UserID, event.Type, event.FlightID, event.SeatNumber)
	return nil
}
