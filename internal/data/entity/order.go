package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is an atomic bundle of tickets bought together by one user.
// It is either fully committed with all its tickets or absent; there is
// no intermediate persisted state.
type Order struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`

	Tickets []*Ticket
}
