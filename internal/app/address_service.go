// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/addresskit/companieshouse/internal/domain"
	"github.com/addresskit/companieshouse/internal/ports"
)

// AddressService orchestrates company address lookup use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type AddressService struct {
	registry ports.CompanyRegistry
	logger   *slog.Logger
}

// AddressServiceConfig contains configuration for the address service.
type AddressServiceConfig struct {
	Registry ports.CompanyRegistry
	Logger   *slog.Logger
}

// NewAddressService creates a new address service with the provided dependencies.
func NewAddressService(cfg AddressServiceConfig) *AddressService {
	return &AddressService{
		registry: cfg.Registry,
		logger:   cfg.Logger,
	}
}

// GetRegisteredAddress retrieves the registered office address for a company.
// Two lookups for the same company number return the same result; the
// operation has no side effects and is safe to repeat.
func (s *AddressService) GetRegisteredAddress(ctx context.Context, companyNumber string) (*domain.Address, error) {
	s.logger.InfoContext(ctx, "looking up registered address",
		slog.String("company_number", companyNumber),
	)

	address, err := s.registry.LookupRegisteredAddress(ctx, companyNumber)
	if err != nil {
		logLookupFailure(ctx, s.logger, "registered address lookup failed", companyNumber, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "registered address found",
		slog.String("company_number", companyNumber),
		slog.String("postal_code", address.PostalCode),
	)

	return address, nil
}

// GetCompanyProfile retrieves the full company profile.
func (s *AddressService) GetCompanyProfile(ctx context.Context, companyNumber string) (*domain.CompanyProfile, error) {
	s.logger.InfoContext(ctx, "looking up company profile",
		slog.String("company_number", companyNumber),
	)

	profile, err := s.registry.GetCompanyProfile(ctx, companyNumber)
	if err != nil {
		logLookupFailure(ctx, s.logger, "company profile lookup failed", companyNumber, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "company profile found",
		slog.String("company_number", profile.CompanyNumber),
		slog.String("company_status", profile.CompanyStatus),
	)

	return profile, nil
}

// logLookupFailure logs lookup errors at a level matching their severity.
// Expected outcomes (unknown company, bad input) stay at INFO so routine
// traffic does not page anyone; upstream trouble is WARN or ERROR.
func logLookupFailure(ctx context.Context, logger *slog.Logger, msg, companyNumber string, err error) {
	attrs := []any{
		slog.String("company_number", companyNumber),
		slog.Any("error", err),
	}

	switch {
	case domain.IsCompanyNotFound(err) || domain.IsValidation(err):
		logger.InfoContext(ctx, msg, attrs...)
	case domain.IsRateLimited(err):
		logger.WarnContext(ctx, msg, attrs...)
	default:
		logger.ErrorContext(ctx, msg, attrs...)
	}
}
