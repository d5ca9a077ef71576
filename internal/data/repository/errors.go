// Sentinel and typed errors shared across repositories, so higher layers
// can distinguish failure scenarios with errors.Is/errors.As instead of
// matching message text.
package repository

import (
	"errors"
	"fmt"

	"cinema-tickets/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by aggregate queries whose subject row does
// not exist (single-entity finders return nil instead, see each repo).
var ErrNotFound = errors.New("not found")

// SeatConflictError reports that a ticket insert hit the
// uq_ticket_place unique constraint: somebody else committed the same
// (session, row, seat) first. TicketIndex is the position of the
// offending ticket within the order being created.
type SeatConflictError struct {
	TicketIndex    int
	Place          entity.Place
	MovieSessionID int64
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) in session %d is already taken",
		e.Place.Row, e.Place.Seat, e.MovieSessionID)
}

// unique_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const uniqueViolationCode = "23505"

func isSeatConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolationCode &&
		pgErr.ConstraintName == "uq_ticket_place"
}
