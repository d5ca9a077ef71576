package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
)

// ReservationValidator gatekeeps ticket creation: geometry bounds first,
// then a seat-taken lookup against the availability ledger.
//
// The seat-taken check is an early rejection with a friendly message,
// not the guarantee: two validations for the same seat can both pass
// before either ticket commits. The uq_ticket_place constraint at the
// storage boundary is what actually prevents double booking; the order
// coordinator maps its violation onto the same rejection.
type ReservationValidator struct {
	ledger *AvailabilityLedger
}

func NewReservationValidator(ledger *AvailabilityLedger) *ReservationValidator {
	return &ReservationValidator{ledger: ledger}
}

// Validate accepts or rejects a candidate (row, seat) for the given
// session. The hall is the session's hall as it exists right now; a
// hall resized after the session was scheduled changes the session's
// seat universe with it. Returned rejections carry a zero TicketIndex;
// the caller tags the index of the request item it was validating.
func (v *ReservationValidator) Validate(ctx context.Context, row, seat int32, session *entity.MovieSession, hall *entity.CinemaHall) error {
	if !hall.IsValidSeat(row, seat) {
		if row < 1 || row > hall.Rows {
			return &ReservationError{
				Reason: ReasonOutOfRange,
				Message: fmt.Sprintf("row %d is out of range, must be within [1, %d]",
					row, hall.Rows),
			}
		}
		return &ReservationError{
			Reason: ReasonOutOfRange,
			Message: fmt.Sprintf("seat %d is out of range, must be within [1, %d]",
				seat, hall.SeatsInRow),
		}
	}

	taken, err := v.ledger.TakenSet(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("check taken seats for session %d: %w", session.ID, err)
	}

	if _, ok := taken[entity.Place{Row: row, Seat: seat}]; ok {
		return &ReservationError{
			Reason: ReasonSeatTaken,
			Message: fmt.Sprintf("seat (row %d, seat %d) in session %d is already taken",
				row, seat, session.ID),
		}
	}

	return nil
}
