package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/geo"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	resolver geo.Resolver
	now      func() time.Time
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, resolver geo.Resolver, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		resolver: resolver,
		now:      time.Now,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// RegisterCustomer creates a customer account. When coordinates are
// provided and no address was typed, the address is reverse-geocoded.
func (s *userService) RegisterCustomer(ctx context.Context, req *RegisterCustomerRequest) (*model.Customer, error) {
	if req == nil {
		return nil, fmt.Errorf("registration request is nil")
	}

	if err := requireFields(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", req.Email).Msg("customer email already registered")
		return nil, model.ErrEmailTaken
	}

	customer := &model.Customer{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     req.Password,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		ZipCode:      req.ZipCode,
		RegisteredAt: s.now(),
	}

	if req.Latitude != nil && req.Longitude != nil {
		customer.Latitude = fmt.Sprintf("%f", *req.Latitude)
		customer.Longitude = fmt.Sprintf("%f", *req.Longitude)
		if customer.Address == "" {
			customer.Address = s.resolver.Resolve(ctx, *req.Latitude, *req.Longitude)
		}
	}

	if err := s.userRepo.SaveCustomer(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to save customer")
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID).
		Str("email", customer.Email).
		Msg("customer registered")

	return customer, nil
}

// RegisterIndustry creates an industry account. At least one waste
// type must be declared.
func (s *userService) RegisterIndustry(ctx context.Context, req *RegisterIndustryRequest) (*model.IndustryUser, error) {
	if req == nil {
		return nil, fmt.Errorf("registration request is nil")
	}

	if err := requireFields(map[string]string{
		"industry name": req.IndustryName,
		"email":         req.Email,
		"password":      req.Password,
	}); err != nil {
		return nil, err
	}

	if len(req.WasteTypes) == 0 {
		return nil, model.NewDomainError(model.ErrCodeValidation, "At least one waste type must be selected")
	}
	for _, wt := range req.WasteTypes {
		if !model.KnownWasteType(wt) {
			return nil, model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("Unknown waste type: %s", wt))
		}
	}

	existing, err := s.userRepo.GetIndustryByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", req.Email).Msg("industry email already registered")
		return nil, model.ErrEmailTaken
	}

	industry := &model.IndustryUser{
		ID:           uuid.NewString(),
		IndustryName: strings.TrimSpace(req.IndustryName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     req.Password,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		WasteTypes:   req.WasteTypes,
		Description:  req.Description,
		RegisteredAt: s.now(),
	}

	if req.Latitude != nil && req.Longitude != nil {
		industry.Latitude = fmt.Sprintf("%f", *req.Latitude)
		industry.Longitude = fmt.Sprintf("%f", *req.Longitude)
		if industry.Address == "" {
			industry.Address = s.resolver.Resolve(ctx, *req.Latitude, *req.Longitude)
		}
	}

	if err := s.userRepo.SaveIndustry(ctx, industry); err != nil {
		s.logger.Error().Err(err).Str("industry_id", industry.ID).Msg("failed to save industry user")
		return nil, fmt.Errorf("failed to save industry user: %w", err)
	}

	s.logger.Info().
		Str("industry_id", industry.ID).
		Str("email", industry.Email).
		Msg("industry registered")

	return industry, nil
}

// LoginCustomer checks a customer's credentials.
func (s *userService) LoginCustomer(ctx context.Context, email, password string) (*model.Customer, error) {
	customer, err := s.userRepo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil || customer.Password != password {
		s.logger.Debug().Str("email", email).Msg("customer login failed")
		return nil, model.ErrInvalidCredentials
	}
	return customer, nil
}

// LoginIndustry checks an industry user's credentials.
func (s *userService) LoginIndustry(ctx context.Context, email, password string) (*model.IndustryUser, error) {
	industry, err := s.userRepo.GetIndustryByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up industry user: %w", err)
	}
	if industry == nil || industry.Password != password {
		s.logger.Debug().Str("email", email).Msg("industry login failed")
		return nil, model.ErrInvalidCredentials
	}
	return industry, nil
}

// GetCustomer retrieves a customer profile.
func (s *userService) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.userRepo.GetCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrUserNotFound
	}
	return customer, nil
}

// GetIndustry retrieves an industry profile.
func (s *userService) GetIndustry(ctx context.Context, id string) (*model.IndustryUser, error) {
	industry, err := s.userRepo.GetIndustry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get industry user: %w", err)
	}
	if industry == nil {
		return nil, model.ErrUserNotFound
	}
	return industry, nil
}

// UpdateCustomer replaces a customer's profile fields. The id, email
// and password are preserved from the stored record.
func (s *userService) UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	stored, err := s.GetCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	updated := *stored
	updated.Name = customer.Name
	updated.Phone = customer.Phone
	updated.Address = customer.Address
	updated.City = customer.City
	updated.ZipCode = customer.ZipCode

	if err := s.userRepo.SaveCustomer(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &updated, nil
}

// UpdateIndustry replaces an industry's profile fields. The id, email
// and password are preserved from the stored record.
func (s *userService) UpdateIndustry(ctx context.Context, industry *model.IndustryUser) (*model.IndustryUser, error) {
	stored, err := s.GetIndustry(ctx, industry.ID)
	if err != nil {
		return nil, err
	}

	updated := *stored
	updated.IndustryName = industry.IndustryName
	updated.Phone = industry.Phone
	updated.Address = industry.Address
	updated.City = industry.City
	updated.Description = industry.Description
	if len(industry.WasteTypes) > 0 {
		updated.WasteTypes = industry.WasteTypes
	}

	if err := s.userRepo.SaveIndustry(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update industry user: %w", err)
	}

	return &updated, nil
}

// requireFields reports the first empty required field.
func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("%s is required", name))
		}
	}
	return nil
}
