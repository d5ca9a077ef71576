package usecase

import (
	"errors"
	"fmt"
)

// RejectReason classifies why a ticket request was refused.
type RejectReason string

const (
	ReasonOutOfRange      RejectReason = "out_of_range"
	ReasonSeatTaken       RejectReason = "seat_taken"
	ReasonSessionNotFound RejectReason = "session_not_found"
)

// ErrEmptyOrder rejects order requests with no tickets.
var ErrEmptyOrder = errors.New("order must contain at least one ticket")

// ReservationError is a recoverable rejection of one ticket request.
// TicketIndex points at the offending entry in the submitted ticket
// list; only the first failure is reported because the whole order is
// rolled back on it.
type ReservationError struct {
	TicketIndex int
	Reason      RejectReason
	Message     string
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("ticket %d: %s", e.TicketIndex, e.Message)
}
