package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/kvstore"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// userRepository implements UserRepository on top of the key-value
// store. Accounts are stored under id-scoped keys with a separate
// email index record pointing back at the id.
type userRepository struct {
	store  kvstore.Store
	logger zerolog.Logger
}

// NewUserRepository creates a new store-backed user repository.
func NewUserRepository(store kvstore.Store, logger zerolog.Logger) UserRepository {
	return &userRepository{
		store:  store,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func customerKey(id string) string { return "customer:" + id }

func industryKey(id string) string { return "industry:" + id }

func customerEmailKey(e string) string { return "customer_email:" + normaliseEmail(e) }

func industryEmailKey(e string) string { return "industry_email:" + normaliseEmail(e) }

func normaliseEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// storedCustomer carries the password alongside the account record.
// model.Customer hides the password from JSON responses, so the
// storage boundary needs its own encoding.
type storedCustomer struct {
	model.Customer
	Password string `json:"password"`
}

type storedIndustry struct {
	model.IndustryUser
	Password string `json:"password"`
}

// SaveCustomer stores the customer record and its email index.
func (r *userRepository) SaveCustomer(ctx context.Context, customer *model.Customer) error {
	value, err := json.Marshal(storedCustomer{Customer: *customer, Password: customer.Password})
	if err != nil {
		return fmt.Errorf("failed to encode customer: %w", err)
	}

	if err := r.store.Set(ctx, customerKey(customer.ID), value); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to save customer")
		return fmt.Errorf("failed to save customer: %w", err)
	}

	if err := r.store.Set(ctx, customerEmailKey(customer.Email), []byte(customer.ID)); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to save customer email index")
		return fmt.Errorf("failed to save customer email index: %w", err)
	}

	return nil
}

// GetCustomer retrieves a customer by id. Returns nil if not found.
func (r *userRepository) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	value, err := r.store.Get(ctx, customerKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	var stored storedCustomer
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode customer: %w", err)
	}

	customer := stored.Customer
	customer.Password = stored.Password
	return &customer, nil
}

// GetCustomerByEmail retrieves a customer via the email index.
// Returns nil if no account uses the email.
func (r *userRepository) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	id, err := r.store.Get(ctx, customerEmailKey(email))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up customer email: %w", err)
	}

	return r.GetCustomer(ctx, string(id))
}

// SaveIndustry stores the industry record and its email index.
func (r *userRepository) SaveIndustry(ctx context.Context, industry *model.IndustryUser) error {
	value, err := json.Marshal(storedIndustry{IndustryUser: *industry, Password: industry.Password})
	if err != nil {
		return fmt.Errorf("failed to encode industry user: %w", err)
	}

	if err := r.store.Set(ctx, industryKey(industry.ID), value); err != nil {
		r.logger.Error().Err(err).Str("industry_id", industry.ID).Msg("failed to save industry user")
		return fmt.Errorf("failed to save industry user: %w", err)
	}

	if err := r.store.Set(ctx, industryEmailKey(industry.Email), []byte(industry.ID)); err != nil {
		r.logger.Error().Err(err).Str("industry_id", industry.ID).Msg("failed to save industry email index")
		return fmt.Errorf("failed to save industry email index: %w", err)
	}

	return nil
}

// GetIndustry retrieves an industry user by id. Returns nil if not found.
func (r *userRepository) GetIndustry(ctx context.Context, id string) (*model.IndustryUser, error) {
	value, err := r.store.Get(ctx, industryKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("industry_id", id).Msg("failed to get industry user")
		return nil, fmt.Errorf("failed to get industry user: %w", err)
	}

	var stored storedIndustry
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode industry user: %w", err)
	}

	industry := stored.IndustryUser
	industry.Password = stored.Password
	return &industry, nil
}

// GetIndustryByEmail retrieves an industry user via the email index.
// Returns nil if no account uses the email.
func (r *userRepository) GetIndustryByEmail(ctx context.Context, email string) (*model.IndustryUser, error) {
	id, err := r.store.Get(ctx, industryEmailKey(email))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up industry email: %w", err)
	}

	return r.GetIndustry(ctx, string(id))
}
