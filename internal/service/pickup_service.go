package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/repository"

	"github.com/rs/zerolog"
)

// pickupService implements PickupService.
type pickupService struct {
	pickupRepo repository.PickupRepository
	userRepo   repository.UserRepository
	now        func() time.Time
	logger     zerolog.Logger
}

// NewPickupService creates a new pickup service.
func NewPickupService(
	pickupRepo repository.PickupRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) PickupService {
	return &pickupService{
		pickupRepo: pickupRepo,
		userRepo:   userRepo,
		now:        time.Now,
		logger:     logger.With().Str("service", "pickup").Logger(),
	}
}

// Create submits a new pickup request with status Pending. The waste
// type must be one the industry declared at registration.
func (s *pickupService) Create(ctx context.Context, industryID, wasteType string, amount int, notes string) (*model.PickupRequest, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	industry, err := s.userRepo.GetIndustry(ctx, industryID)
	if err != nil {
		s.logger.Error().Err(err).Str("industry_id", industryID).Msg("failed to load industry user")
		return nil, fmt.Errorf("failed to load industry user: %w", err)
	}
	if industry == nil {
		return nil, model.ErrUserNotFound
	}

	if !industry.GeneratesWaste(wasteType) {
		s.logger.Warn().
			Str("industry_id", industryID).
			Str("waste_type", wasteType).
			Msg("pickup requested for undeclared waste type")
		return nil, model.ErrInvalidWasteType
	}

	now := s.now()
	request := model.PickupRequest{
		ID:          model.NewPickupRequestID(now),
		IndustryID:  industryID,
		WasteType:   wasteType,
		Amount:      amount,
		Status:      model.PickupStatusPending,
		RequestDate: now.Format("2006-01-02"),
		Notes:       notes,
	}

	if err := s.pickupRepo.Append(ctx, industryID, request); err != nil {
		s.logger.Error().Err(err).Str("request_id", request.ID).Msg("failed to persist pickup request")
		return nil, fmt.Errorf("failed to persist pickup request: %w", err)
	}

	s.logger.Info().
		Str("request_id", request.ID).
		Str("industry_id", industryID).
		Str("waste_type", wasteType).
		Int("amount_kg", amount).
		Msg("pickup request created")

	return &request, nil
}

// List retrieves the industry's pickup requests.
func (s *pickupService) List(ctx context.Context, industryID string) ([]model.PickupRequest, error) {
	requests, err := s.pickupRepo.List(ctx, industryID)
	if err != nil {
		s.logger.Error().Err(err).Str("industry_id", industryID).Msg("failed to list pickup requests")
		return nil, fmt.Errorf("failed to list pickup requests: %w", err)
	}
	return requests, nil
}

// Cancel removes a request that is still Pending or Assigned.
func (s *pickupService) Cancel(ctx context.Context, industryID, requestID string) error {
	request, err := s.pickupRepo.GetByID(ctx, industryID, requestID)
	if err != nil {
		return fmt.Errorf("failed to get pickup request: %w", err)
	}
	if request == nil {
		return model.ErrRequestNotFound
	}

	if !request.Cancellable() {
		s.logger.Debug().
			Str("request_id", requestID).
			Str("status", request.Status).
			Msg("pickup request no longer cancellable")
		return model.ErrNotCancellable
	}

	if err := s.pickupRepo.Delete(ctx, industryID, requestID); err != nil {
		return fmt.Errorf("failed to cancel pickup request: %w", err)
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("industry_id", industryID).
		Msg("pickup request cancelled")

	return nil
}

// UpdateStatus advances a request's status. The collector side is
// simulated; this is the hook it calls.
func (s *pickupService) UpdateStatus(ctx context.Context, industryID, requestID, status string) (*model.PickupRequest, error) {
	request, err := s.pickupRepo.GetByID(ctx, industryID, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pickup request: %w", err)
	}
	if request == nil {
		return nil, model.ErrRequestNotFound
	}

	if !validPickupTransition(request.Status, status) {
		s.logger.Warn().
			Str("request_id", requestID).
			Str("from", request.Status).
			Str("to", status).
			Msg("invalid pickup status transition")
		return nil, model.ErrInvalidStatus
	}

	request.Status = status
	if err := s.pickupRepo.Update(ctx, industryID, *request); err != nil {
		return nil, fmt.Errorf("failed to update pickup request: %w", err)
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("status", status).
		Msg("pickup request status updated")

	return request, nil
}

// Stats summarises the industry's pickup activity for the dashboard.
func (s *pickupService) Stats(ctx context.Context, industryID string) (*PickupStats, error) {
	requests, err := s.pickupRepo.List(ctx, industryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pickup requests: %w", err)
	}

	stats := &PickupStats{TotalRequests: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case model.PickupStatusPending:
			stats.PendingRequests++
		case model.PickupStatusPickedUp:
			stats.CompletedRequests++
			stats.TotalKgCollected += r.Amount
		}
	}

	return stats, nil
}

func validPickupTransition(from, to string) bool {
	switch from {
	case model.PickupStatusPending:
		return to == model.PickupStatusAssigned
	case model.PickupStatusAssigned:
		return to == model.PickupStatusPickedUp
	default:
		return false
	}
}
