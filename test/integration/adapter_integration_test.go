//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addresskit/companieshouse/internal/adapters/clients"
	"github.com/addresskit/companieshouse/internal/adapters/clients/companieshouse"
	"github.com/addresskit/companieshouse/internal/domain"
	"github.com/addresskit/companieshouse/internal/platform/config"
)

const profileBody = `{
	"company_number": "00000006",
	"company_name": "MARINE AND GENERAL MUTUAL LIFE ASSURANCE SOCIETY",
	"company_status": "active",
	"type": "ltd",
	"date_of_creation": "1862-10-25",
	"jurisdiction": "england-wales",
	"registered_office_address": {
		"address_line_1": "Mgm House",
		"address_line_2": "Heene Road",
		"locality": "Worthing",
		"region": "West Sussex",
		"postal_code": "BN11 3AT",
		"country": "England"
	}
}`

// testRegistryClient builds a Companies House adapter pointed at a test server.
func testRegistryClient(t *testing.T, baseURL string) *companieshouse.Client {
	t.Helper()

	httpClient, err := clients.New(&clients.Config{
		ServiceName: companieshouse.ServiceName,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
		},
		AuthFunc: clients.BasicAuth("integration-test-key", ""),
	})
	require.NoError(t, err)

	return companieshouse.NewClient(companieshouse.ClientConfig{Client: httpClient})
}

// TestRegistryAdapter_LookupRegisteredAddress_Integration verifies the full
// flow of looking up a registered address through the adapter.
func TestRegistryAdapter_LookupRegisteredAddress_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company/00000006", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		// The API key travels as a Basic auth username with empty password
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "integration-test-key", user)
		assert.Empty(t, pass)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(profileBody))
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	address, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")

	require.NoError(t, err)
	assert.Equal(t, "Mgm House", address.AddressLine1)
	assert.Equal(t, "Heene Road", address.AddressLine2)
	assert.Equal(t, "Worthing", address.Locality)
	assert.Equal(t, "West Sussex", address.Region)
	assert.Equal(t, "BN11 3AT", address.PostalCode)
	assert.Equal(t, "England", address.Country)
}

// TestRegistryAdapter_GetCompanyProfile_Integration verifies the profile
// lookup including the nested registered office address.
func TestRegistryAdapter_GetCompanyProfile_Integration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(profileBody))
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	profile, err := adapter.GetCompanyProfile(context.Background(), "00000006")

	require.NoError(t, err)
	assert.Equal(t, "00000006", profile.CompanyNumber)
	assert.Equal(t, "active", profile.CompanyStatus)
	assert.Equal(t, "england-wales", profile.Jurisdiction)
	require.NotNil(t, profile.RegisteredOfficeAddress)
	assert.Equal(t, "BN11 3AT", profile.RegisteredOfficeAddress.PostalCode)
}

// TestRegistryAdapter_ErrorMapping_NotFound verifies that 404 responses
// are correctly mapped to domain CompanyNotFoundError.
func TestRegistryAdapter_ErrorMapping_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"type":"ch:service","error":"company-profile-not-found"}]}`))
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	_, err := adapter.LookupRegisteredAddress(context.Background(), "99999999")

	require.Error(t, err)
	assert.True(t, domain.IsCompanyNotFound(err))
	assert.True(t, domain.IsUpstream(err))
}

// TestRegistryAdapter_ErrorMapping_RateLimited verifies 429 handling
// including the Retry-After hint.
func TestRegistryAdapter_ErrorMapping_RateLimited(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		wantHint   *int64
	}{
		{
			name:       "with retry hint",
			retryAfter: "17",
			wantHint:   int64Ptr(17),
		},
		{
			name:       "without retry hint",
			retryAfter: "",
			wantHint:   nil,
		},
		{
			name:       "malformed retry hint is swallowed",
			retryAfter: "tomorrow",
			wantHint:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			adapter := testRegistryClient(t, server.URL)

			_, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")

			require.Error(t, err)
			assert.True(t, domain.IsRateLimited(err))

			var rateLimitErr *domain.RateLimitError
			require.ErrorAs(t, err, &rateLimitErr)

			if tt.wantHint == nil {
				assert.Nil(t, rateLimitErr.RetryAfter)
			} else {
				require.NotNil(t, rateLimitErr.RetryAfter)
				assert.Equal(t, *tt.wantHint, *rateLimitErr.RetryAfter)
			}
		})
	}
}

// TestRegistryAdapter_ErrorMapping_Authentication verifies that 401
// responses map to an authentication failure.
func TestRegistryAdapter_ErrorMapping_Authentication(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	_, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")

	require.Error(t, err)
	assert.True(t, domain.IsAuthentication(err))
}

// TestRegistryAdapter_ErrorMapping_ServerError verifies that 5xx responses
// map to an upstream failure, and that exactly one request is made.
func TestRegistryAdapter_ErrorMapping_ServerError(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	_, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
	assert.False(t, domain.IsCompanyNotFound(err))
	assert.Equal(t, int32(1), attempts.Load(), "upstream failures must not be retried")
}

// TestRegistryAdapter_InvalidResponse_MalformedJSON verifies that bodies
// that fail to decode map to an invalid response error.
func TestRegistryAdapter_InvalidResponse_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"company_number": `))
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	_, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidResponse(err))
}

// TestRegistryAdapter_InvalidResponse_MissingAddress verifies that a valid
// profile without a registered office address fails the address lookup but
// not the profile lookup.
func TestRegistryAdapter_InvalidResponse_MissingAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"company_number":"00000006","company_name":"DORMANT LIMITED","company_status":"dissolved"}`))
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	_, err := adapter.LookupRegisteredAddress(context.Background(), "00000006")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidResponse(err))

	profile, err := adapter.GetCompanyProfile(context.Background(), "00000006")
	require.NoError(t, err)
	assert.Nil(t, profile.RegisteredOfficeAddress)
}

// TestRegistryAdapter_BlankCompanyNumber verifies that blank input fails
// validation before any request is made.
func TestRegistryAdapter_BlankCompanyNumber(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := testRegistryClient(t, server.URL)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := adapter.LookupRegisteredAddress(context.Background(), input)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	}

	assert.Equal(t, int32(0), requests.Load(), "no request should be made for blank input")
}

func int64Ptr(v int64) *int64 {
	return &v
}
