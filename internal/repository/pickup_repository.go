package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/kvstore"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// pickupRepository implements PickupRepository on top of the
// key-value store. Each industry's request list lives under one key.
type pickupRepository struct {
	store  kvstore.Store
	logger zerolog.Logger
}

// NewPickupRepository creates a new store-backed pickup repository.
func NewPickupRepository(store kvstore.Store, logger zerolog.Logger) PickupRepository {
	return &pickupRepository{
		store:  store,
		logger: logger.With().Str("repository", "pickup").Logger(),
	}
}

func pickupsKey(industryID string) string {
	return "pickups:" + industryID
}

// List retrieves the industry's pickup requests, oldest first.
func (r *pickupRepository) List(ctx context.Context, industryID string) ([]model.PickupRequest, error) {
	value, err := r.store.Get(ctx, pickupsKey(industryID))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []model.PickupRequest{}, nil
		}
		r.logger.Error().Err(err).Str("industry_id", industryID).Msg("failed to get pickup requests")
		return nil, fmt.Errorf("failed to get pickup requests: %w", err)
	}

	var requests []model.PickupRequest
	if err := json.Unmarshal(value, &requests); err != nil {
		r.logger.Error().Err(err).Str("industry_id", industryID).Msg("failed to decode pickup requests")
		return nil, fmt.Errorf("failed to decode pickup requests: %w", err)
	}

	return requests, nil
}

// Append adds a pickup request to the industry's list.
func (r *pickupRepository) Append(ctx context.Context, industryID string, request model.PickupRequest) error {
	requests, err := r.List(ctx, industryID)
	if err != nil {
		return err
	}

	requests = append(requests, request)
	return r.save(ctx, industryID, requests)
}

// GetByID retrieves a single request. Returns nil if not found.
func (r *pickupRepository) GetByID(ctx context.Context, industryID, requestID string) (*model.PickupRequest, error) {
	requests, err := r.List(ctx, industryID)
	if err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].ID == requestID {
			return &requests[i], nil
		}
	}

	return nil, nil
}

// Update replaces an existing request.
func (r *pickupRepository) Update(ctx context.Context, industryID string, request model.PickupRequest) error {
	requests, err := r.List(ctx, industryID)
	if err != nil {
		return err
	}

	for i := range requests {
		if requests[i].ID == request.ID {
			requests[i] = request
			return r.save(ctx, industryID, requests)
		}
	}

	return model.ErrRequestNotFound
}

// Delete removes a request from the industry's list.
func (r *pickupRepository) Delete(ctx context.Context, industryID, requestID string) error {
	requests, err := r.List(ctx, industryID)
	if err != nil {
		return err
	}

	kept := requests[:0]
	found := false
	for _, req := range requests {
		if req.ID == requestID {
			found = true
			continue
		}
		kept = append(kept, req)
	}

	if !found {
		return model.ErrRequestNotFound
	}

	return r.save(ctx, industryID, kept)
}

func (r *pickupRepository) save(ctx context.Context, industryID string, requests []model.PickupRequest) error {
	value, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("failed to encode pickup requests: %w", err)
	}

	if err := r.store.Set(ctx, pickupsKey(industryID), value); err != nil {
		r.logger.Error().Err(err).Str("industry_id", industryID).Msg("failed to save pickup requests")
		return fmt.Errorf("failed to save pickup requests: %w", err)
	}

	return nil
}
