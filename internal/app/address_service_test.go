package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addresskit/companieshouse/internal/domain"
)

// stubRegistry is a test double for ports.CompanyRegistry.
type stubRegistry struct {
	address *domain.Address
	profile *domain.CompanyProfile
	err     error

	lookupCalls  int
	profileCalls int
	lastNumber   string
}

func (s *stubRegistry) LookupRegisteredAddress(_ context.Context, companyNumber string) (*domain.Address, error) {
	s.lookupCalls++
	s.lastNumber = companyNumber
	if s.err != nil {
		return nil, s.err
	}
	return s.address, nil
}

func (s *stubRegistry) GetCompanyProfile(_ context.Context, companyNumber string) (*domain.CompanyProfile, error) {
	s.profileCalls++
	s.lastNumber = companyNumber
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newService(registry *stubRegistry) *AddressService {
	return NewAddressService(AddressServiceConfig{
		Registry: registry,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAddressService_GetRegisteredAddress(t *testing.T) {
	registry := &stubRegistry{
		address: &domain.Address{
			AddressLine1: "Churchill Way",
			Locality:     "Cardiff",
			PostalCode:   "CF10 2HH",
			Country:      "Wales",
		},
	}

	svc := newService(registry)

	address, err := svc.GetRegisteredAddress(context.Background(), "00006400")
	require.NoError(t, err)
	assert.Equal(t, "CF10 2HH", address.PostalCode)
	assert.Equal(t, "00006400", registry.lastNumber)
	assert.Equal(t, 1, registry.lookupCalls)
}

func TestAddressService_GetRegisteredAddress_PropagatesError(t *testing.T) {
	registry := &stubRegistry{err: domain.NewCompanyNotFoundError("99999999")}
	svc := newService(registry)

	address, err := svc.GetRegisteredAddress(context.Background(), "99999999")
	require.Error(t, err)
	assert.Nil(t, address)
	assert.True(t, domain.IsCompanyNotFound(err))
}

func TestAddressService_GetRegisteredAddress_ErrorUnchanged(t *testing.T) {
	// The service must not rewrap domain errors; handlers rely on the
	// concrete types for status mapping.
	tests := []struct {
		name string
		err  error
	}{
		{"not found", domain.NewCompanyNotFoundError("123")},
		{"rate limited", domain.NewRateLimitError(nil)},
		{"validation", domain.NewValidationError("companyNumber", "must not be blank")},
		{"authentication", domain.NewAuthenticationError("check API key configuration")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &stubRegistry{err: tt.err}
			svc := newService(registry)

			_, err := svc.GetRegisteredAddress(context.Background(), "123")
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestAddressService_GetCompanyProfile(t *testing.T) {
	registry := &stubRegistry{
		profile: &domain.CompanyProfile{
			CompanyNumber: "00006400",
			CompanyName:   "THE GIRLS' DAY SCHOOL TRUST",
			CompanyStatus: "active",
		},
	}

	svc := newService(registry)

	profile, err := svc.GetCompanyProfile(context.Background(), "00006400")
	require.NoError(t, err)
	assert.Equal(t, "00006400", profile.CompanyNumber)
	assert.Equal(t, 1, registry.profileCalls)
}

func TestAddressService_GetCompanyProfile_PropagatesError(t *testing.T) {
	registry := &stubRegistry{err: domain.NewUpstreamError("Companies House API server error (HTTP 500)", nil)}
	svc := newService(registry)

	profile, err := svc.GetCompanyProfile(context.Background(), "00006400")
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, domain.IsUpstream(err))
}
