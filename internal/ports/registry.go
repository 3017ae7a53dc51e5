// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
package ports

import (
	"context"

	"github.com/addresskit/companieshouse/internal/domain"
)

// CompanyRegistry is the outbound port for the upstream company registry.
// The Companies House adapter implements it; the application layer and the
// HTTP handlers only ever see this interface.
//
// Implementations must:
//   - respect context deadlines and cancellation on every call
//   - return domain types, never wire DTOs
//   - classify every failure with the internal/domain error taxonomy
type CompanyRegistry interface {
	// LookupRegisteredAddress returns the registered office address for a
	// company number. It never returns a nil address without an error: a
	// profile without an address is reported as domain.ErrInvalidResponse.
	//
	// Failure classification:
	//   - domain.ErrValidation for a blank company number (no I/O performed)
	//   - domain.ErrCompanyNotFound when the registry has no such company
	//   - domain.ErrRateLimited when the registry is throttling
	//   - domain.ErrAuthentication when the API key is rejected
	//   - domain.ErrInvalidResponse for undecodable or address-less payloads
	//   - domain.ErrUpstream for everything else
	LookupRegisteredAddress(ctx context.Context, companyNumber string) (*domain.Address, error)

	// GetCompanyProfile returns the company profile the address lookup is
	// carved out of. Same failure classification, except a missing
	// registered office address is not an error here.
	GetCompanyProfile(ctx context.Context, companyNumber string) (*domain.CompanyProfile, error)
}
