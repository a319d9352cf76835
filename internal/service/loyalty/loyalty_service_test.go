package loyalty

import (
	"context"
	"testing"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePoints(ctx context.Context, id string, points int) (*domain.User, error) {
	args := m.Called(ctx, id, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestLoyaltyService_Profile(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewLoyaltyService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Points: 2150}, nil).Once()

	user, tier, err := service.Profile(ctx, "u1")

	assert.NoError(t, err)
	assert.Equal(t, 2150, user.Points)
	assert.Equal(t, TierGold, tier)
	mockRepo.AssertExpectations(t)
}

func TestLoyaltyService_AddPoints(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewLoyaltyService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Points: 400}, nil).Once()
	mockRepo.On("UpdatePoints", ctx, "u1", 650).Return(&domain.User{ID: "u1", Points: 650}, nil).Once()

	updated, err := service.AddPoints(ctx, "u1", 250)

	assert.NoError(t, err)
	assert.Equal(t, 650, updated.Points)
	mockRepo.AssertExpectations(t)
}

func TestLoyaltyService_Profile_UserMissing(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewLoyaltyService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	_, _, err := service.Profile(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
