package loyalty

import (
	"context"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/repository"
)

type LoyaltyUseCase interface {
	Profile(ctx context.Context, userID string) (*domain.User, Tier, error)
	AddPoints(ctx context.Context, userID string, delta int) (*domain.User, error)
}

type LoyaltyService struct {
	users repository.UserRepository
}

func NewLoyaltyService(users repository.UserRepository) *LoyaltyService {
	return &LoyaltyService{users: users}
}

// Profile returns the user's loyalty projection with the tier recomputed from
// the stored points.
func (s *LoyaltyService) Profile(ctx context.Context, userID string) (*domain.User, Tier, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return user, TierFor(user.Points), nil
}

// AddPoints applies a point delta to the user's total and persists it.
func (s *LoyaltyService) AddPoints(ctx context.Context, userID string, delta int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.UpdatePoints(ctx, userID, AddPoints(user.Points, delta))
}

var _ LoyaltyUseCase = (*LoyaltyService)(nil)
