package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPickupRepository is a mock implementation of PickupRepository.
type MockPickupRepository struct {
	mock.Mock
}

func (m *MockPickupRepository) List(ctx context.Context, industryID string) ([]model.PickupRequest, error) {
	args := m.Called(ctx, industryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) Append(ctx context.Context, industryID string, request model.PickupRequest) error {
	args := m.Called(ctx, industryID, request)
	return args.Error(0)
}

func (m *MockPickupRepository) GetByID(ctx context.Context, industryID, requestID string) (*model.PickupRequest, error) {
	args := m.Called(ctx, industryID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PickupRequest), args.Error(1)
}

func (m *MockPickupRepository) Update(ctx context.Context, industryID string, request model.PickupRequest) error {
	args := m.Called(ctx, industryID, request)
	return args.Error(0)
}

func (m *MockPickupRepository) Delete(ctx context.Context, industryID, requestID string) error {
	args := m.Called(ctx, industryID, requestID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveCustomer(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockUserRepository) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockUserRepository) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockUserRepository) SaveIndustry(ctx context.Context, industry *model.IndustryUser) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *MockUserRepository) GetIndustry(ctx context.Context, id string) (*model.IndustryUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryUser), args.Error(1)
}

func (m *MockUserRepository) GetIndustryByEmail(ctx context.Context, email string) (*model.IndustryUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryUser), args.Error(1)
}

func testIndustry() *model.IndustryUser {
	return &model.IndustryUser{
		ID:           "ind-1",
		IndustryName: "Lakeside Textiles",
		Email:        "ops@lakeside.example",
		WasteTypes:   []string{"Textile", "Plastic"},
	}
}

func TestPickupService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockPickupRepo := new(MockPickupRepository)
	mockUserRepo := new(MockUserRepository)

	service := NewPickupService(mockPickupRepo, mockUserRepo, logger)
	fixed := time.Date(2024, 4, 5, 9, 30, 0, 0, time.UTC)
	service.(*pickupService).now = func() time.Time { return fixed }

	mockUserRepo.On("GetIndustry", ctx, "ind-1").Return(testIndustry(), nil)
	mockPickupRepo.On("Append", ctx, "ind-1", mock.MatchedBy(func(r model.PickupRequest) bool {
		return r.Status == model.PickupStatusPending &&
			r.WasteType == "Textile" &&
			r.Amount == 120 &&
			r.RequestDate == "2024-04-05"
	})).Return(nil)

	request, err := service.Create(ctx, "ind-1", "Textile", 120, "Loading dock B")

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, model.NewPickupRequestID(fixed), request.ID)
	assert.Equal(t, "ind-1", request.IndustryID)
	assert.Equal(t, model.PickupStatusPending, request.Status)
	assert.Equal(t, "Loading dock B", request.Notes)

	mockPickupRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestPickupService_Create_Errors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		industryID  string
		wasteType   string
		amount      int
		industry    *model.IndustryUser
		expectedErr error
	}{
		{
			name:        "Zero amount",
			industryID:  "ind-1",
			wasteType:   "Textile",
			amount:      0,
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Negative amount",
			industryID:  "ind-1",
			wasteType:   "Textile",
			amount:      -10,
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Unknown industry",
			industryID:  "ind-404",
			wasteType:   "Textile",
			amount:      50,
			industry:    nil,
			expectedErr: model.ErrUserNotFound,
		},
		{
			name:        "Undeclared waste type",
			industryID:  "ind-1",
			wasteType:   "Chemical",
			amount:      50,
			industry:    testIndustry(),
			expectedErr: model.ErrInvalidWasteType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPickupRepo := new(MockPickupRepository)
			mockUserRepo := new(MockUserRepository)

			service := NewPickupService(mockPickupRepo, mockUserRepo, logger)

			if tt.amount > 0 {
				mockUserRepo.On("GetIndustry", ctx, tt.industryID).Return(tt.industry, nil)
			}

			request, err := service.Create(ctx, tt.industryID, tt.wasteType, tt.amount, "")

			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err)
			assert.Nil(t, request)

			mockPickupRepo.AssertNotCalled(t, "Append")
		})
	}
}

func TestPickupService_Cancel(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		request     *model.PickupRequest
		expectedErr error
	}{
		{
			name:    "Pending is cancellable",
			request: &model.PickupRequest{ID: "req-1", Status: model.PickupStatusPending},
		},
		{
			name:    "Assigned is cancellable",
			request: &model.PickupRequest{ID: "req-1", Status: model.PickupStatusAssigned},
		},
		{
			name:        "Picked Up is not cancellable",
			request:     &model.PickupRequest{ID: "req-1", Status: model.PickupStatusPickedUp},
			expectedErr: model.ErrNotCancellable,
		},
		{
			name:        "Unknown request",
			request:     nil,
			expectedErr: model.ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPickupRepo := new(MockPickupRepository)
			service := NewPickupService(mockPickupRepo, new(MockUserRepository), logger)

			mockPickupRepo.On("GetByID", ctx, "ind-1", "req-1").Return(tt.request, nil)
			if tt.expectedErr == nil {
				mockPickupRepo.On("Delete", ctx, "ind-1", "req-1").Return(nil)
			}

			err := service.Cancel(ctx, "ind-1", "req-1")

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				mockPickupRepo.AssertNotCalled(t, "Delete")
			} else {
				require.NoError(t, err)
			}

			mockPickupRepo.AssertExpectations(t)
		})
	}
}

func TestPickupService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		from        string
		to          string
		expectedErr error
	}{
		{name: "Pending to Assigned", from: model.PickupStatusPending, to: model.PickupStatusAssigned},
		{name: "Assigned to Picked Up", from: model.PickupStatusAssigned, to: model.PickupStatusPickedUp},
		{name: "Pending to Picked Up skips a step", from: model.PickupStatusPending, to: model.PickupStatusPickedUp, expectedErr: model.ErrInvalidStatus},
		{name: "Picked Up is terminal", from: model.PickupStatusPickedUp, to: model.PickupStatusAssigned, expectedErr: model.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPickupRepo := new(MockPickupRepository)
			service := NewPickupService(mockPickupRepo, new(MockUserRepository), logger)

			stored := &model.PickupRequest{ID: "req-1", IndustryID: "ind-1", Status: tt.from}
			mockPickupRepo.On("GetByID", ctx, "ind-1", "req-1").Return(stored, nil)
			if tt.expectedErr == nil {
				mockPickupRepo.On("Update", ctx, "ind-1", mock.MatchedBy(func(r model.PickupRequest) bool {
					return r.ID == "req-1" && r.Status == tt.to
				})).Return(nil)
			}

			got, err := service.UpdateStatus(ctx, "ind-1", "req-1", tt.to)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got.Status)
			}

			mockPickupRepo.AssertExpectations(t)
		})
	}
}

func TestPickupService_Stats(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockPickupRepo := new(MockPickupRepository)
	service := NewPickupService(mockPickupRepo, new(MockUserRepository), logger)

	requests := []model.PickupRequest{
		{ID: "1", Status: model.PickupStatusPending, Amount: 10},
		{ID: "2", Status: model.PickupStatusAssigned, Amount: 20},
		{ID: "3", Status: model.PickupStatusPickedUp, Amount: 30},
		{ID: "4", Status: model.PickupStatusPickedUp, Amount: 45},
	}
	mockPickupRepo.On("List", ctx, "ind-1").Return(requests, nil)

	stats, err := service.Stats(ctx, "ind-1")

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 2, stats.CompletedRequests)
	// Only collected waste counts toward the total.
	assert.Equal(t, 75, stats.TotalKgCollected)
}

func TestPickupService_Stats_Empty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockPickupRepo := new(MockPickupRepository)
	service := NewPickupService(mockPickupRepo, new(MockUserRepository), logger)

	mockPickupRepo.On("List", ctx, "ind-1").Return([]model.PickupRequest{}, nil)

	stats, err := service.Stats(ctx, "ind-1")

	require.NoError(t, err)
	assert.Zero(t, stats.TotalRequests)
	assert.Zero(t, stats.TotalKgCollected)
}

func TestPickupService_List_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockPickupRepo := new(MockPickupRepository)
	service := NewPickupService(mockPickupRepo, new(MockUserRepository), logger)

	mockPickupRepo.On("List", ctx, "ind-1").Return(nil, errors.New("store unavailable"))

	requests, err := service.List(ctx, "ind-1")

	require.Error(t, err)
	assert.Nil(t, requests)
}
