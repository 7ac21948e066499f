package dashboard

import (
	"context"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/Domenick1991/alkawthar/internal/repository"
)

type DashboardUseCase interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type DashboardService struct {
	repo repository.StatsRepository
}

func NewDashboardService(repo repository.StatsRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.repo.Dashboard(ctx)
}

var _ DashboardUseCase = (*DashboardService)(nil)
