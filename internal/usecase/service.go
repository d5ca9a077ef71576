package usecase

import (
	"cinema-tickets/internal/data/repository"

	"go.uber.org/zap"
)

// Service bundles every use case behind one injection point.
type Service struct {
	Catalog CatalogService
	Movie   MovieService
	Session SessionService
	Order   OrderService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	ledger := NewAvailabilityLedger(repo, log)
	validator := NewReservationValidator(ledger)

	return &Service{
		Catalog: NewCatalogService(repo, log),
		Movie:   NewMovieService(repo, log),
		Session: NewSessionService(repo, ledger, log),
		Order:   NewOrderService(repo, validator, log),
	}
}
