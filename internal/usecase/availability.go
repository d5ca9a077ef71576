package usecase

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"go.uber.org/zap"
)

// AvailabilityLedger answers which seats of a session are taken and how
// many remain. Every call reads the persisted state afresh; caching here
// would let the seat-taken pre-check go stale.
type AvailabilityLedger struct {
	sessions repository.SessionRepository
	tickets  repository.TicketRepository
	log      *zap.Logger
}

func NewAvailabilityLedger(repo *repository.Repository, log *zap.Logger) *AvailabilityLedger {
	return &AvailabilityLedger{
		sessions: repo.Session,
		tickets:  repo.Ticket,
		log:      log.With(zap.String("service", "availability")),
	}
}

// TakenPlaces returns the occupied seats of the session, ordered by row
// then seat.
func (l *AvailabilityLedger) TakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error) {
	return l.tickets.TakenPlaces(ctx, sessionID)
}

// TakenSet returns the occupied seats as a set keyed by place.
func (l *AvailabilityLedger) TakenSet(ctx context.Context, sessionID int64) (map[entity.Place]struct{}, error) {
	places, err := l.tickets.TakenPlaces(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	taken := make(map[entity.Place]struct{}, len(places))
	for _, place := range places {
		taken[place] = struct{}{}
	}

	return taken, nil
}

// AvailableCount is the hall capacity minus sold tickets, computed as a
// single database read so the two numbers cannot race each other.
func (l *AvailabilityLedger) AvailableCount(ctx context.Context, sessionID int64) (int32, error) {
	return l.sessions.AvailableCount(ctx, sessionID)
}
