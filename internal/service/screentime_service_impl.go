package service

import (
	"context"
	"time"

	"github.com/sharansub/screensaway/internal/domain"
	"github.com/sharansub/screensaway/internal/repository"
)

type screenTimeService struct {
	screenTimeRepo repository.ScreenTimeRepository
}

func NewScreenTimeService(screenTimeRepo repository.ScreenTimeRepository) ScreenTimeService {
	return &screenTimeService{screenTimeRepo: screenTimeRepo}
}

func (s *screenTimeService) ReportToday(ctx context.Context, userID string, durationMinutes int) error {
	if err := s.screenTimeRepo.Upsert(ctx, userID, time.Now(), durationMinutes); err != nil {
		return domain.NewGatewayError(err)
	}
	return nil
}
