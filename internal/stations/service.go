package stations

import (
	"context"

	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

// Service sits between the station repository and HTTP handlers.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService builds service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Filtered fetches the station list and returns the subset matching the
// filter. A zero filter returns everything.
func (s *Service) Filtered(ctx context.Context, f Filter) ([]models.Station, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("station list fetch failed", zap.Error(err))
		return nil, err
	}
	return ApplyFilter(list, f), nil
}
