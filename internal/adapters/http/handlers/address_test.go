package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/addresskit/companieshouse/internal/adapters/http/dto"
	"github.com/addresskit/companieshouse/internal/app"
	"github.com/addresskit/companieshouse/internal/domain"
	"github.com/addresskit/companieshouse/internal/mocks"
)

func newAddressTestRouter(registry *mocks.MockCompanyRegistry) *gin.Engine {
	service := app.NewAddressService(app.AddressServiceConfig{
		Registry: registry,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	handler := NewAddressHandler(service)

	engine := gin.New()
	handler.RegisterAddressRoutes(engine.Group("/api/v1"))

	return engine
}

func TestAddressHandler_GetRegisteredAddress(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().LookupRegisteredAddress(mock.Anything, "00000006").Return(&domain.Address{
		AddressLine1: "Companies House",
		AddressLine2: "Crown Way",
		Locality:     "Cardiff",
		Region:       "South Glamorgan",
		PostalCode:   "CF14 3UZ",
		Country:      "Wales",
	}, nil)

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/00000006/registered-address", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AddressResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Companies House", resp.AddressLine1)
	assert.Equal(t, "Crown Way", resp.AddressLine2)
	assert.Equal(t, "Cardiff", resp.Locality)
	assert.Equal(t, "CF14 3UZ", resp.PostalCode)
	assert.Equal(t, "Wales", resp.Country)
}

func TestAddressHandler_GetRegisteredAddress_OmitsEmptyFields(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().LookupRegisteredAddress(mock.Anything, "00000006").Return(&domain.Address{
		AddressLine1: "1 Main Street",
		PostalCode:   "EC1A 1BB",
	}, nil)

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/00000006/registered-address", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)

	assert.Contains(t, body, "addressLine1")
	assert.Contains(t, body, "postalCode")
	assert.NotContains(t, body, "locality")
	assert.NotContains(t, body, "country")
	assert.NotContains(t, body, "poBox")
}

func TestAddressHandler_GetRegisteredAddress_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "company not found",
			err:        domain.NewCompanyNotFoundError("99999999"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "validation failure",
			err:        domain.NewValidationError("companyNumber", "must not be blank"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "rate limited",
			err:        domain.NewRateLimitError(nil),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   dto.ErrorCodeRateLimited,
		},
		{
			name:       "authentication failure",
			err:        domain.NewAuthenticationError("check API key configuration"),
			wantStatus: http.StatusBadGateway,
			wantCode:   dto.ErrorCodeUpstream,
		},
		{
			name:       "upstream failure",
			err:        domain.NewUpstreamError("server error (HTTP 500)", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   dto.ErrorCodeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockCompanyRegistry(t)
			registry.EXPECT().LookupRegisteredAddress(mock.Anything, "99999999").Return(nil, tt.err)

			engine := newAddressTestRouter(registry)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/99999999/registered-address", nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestAddressHandler_BlankCompanyNumberRejectedBeforeLookup(t *testing.T) {
	paths := []string{
		"/api/v1/companies/%20%20",
		"/api/v1/companies/%20%20/registered-address",
		"/api/v1/companies/%09%0A/registered-address",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			// No expectations: the registry must never be consulted.
			registry := mocks.NewMockCompanyRegistry(t)
			engine := newAddressTestRouter(registry)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, "companyNumber")
		})
	}
}

func TestAddressHandler_GetRegisteredAddress_RetryAfter(t *testing.T) {
	retryAfter := int64(120)

	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().LookupRegisteredAddress(mock.Anything, "00000006").
		Return(nil, domain.NewRateLimitError(&retryAfter))

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/00000006/registered-address", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "120", w.Header().Get("Retry-After"))
}

func TestAddressHandler_GetCompanyProfile(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().GetCompanyProfile(mock.Anything, "00000006").Return(&domain.CompanyProfile{
		CompanyNumber:  "00000006",
		CompanyName:    "EXAMPLE TRADING LIMITED",
		CompanyStatus:  "active",
		Type:           "ltd",
		DateOfCreation: "1999-04-21",
		Jurisdiction:   "england-wales",
		RegisteredOfficeAddress: &domain.Address{
			AddressLine1: "1 Main Street",
			Locality:     "London",
			PostalCode:   "EC1A 1BB",
		},
	}, nil)

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/00000006", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CompanyProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "00000006", resp.CompanyNumber)
	assert.Equal(t, "EXAMPLE TRADING LIMITED", resp.CompanyName)
	assert.Equal(t, "active", resp.CompanyStatus)
	require.NotNil(t, resp.RegisteredAddress)
	assert.Equal(t, "EC1A 1BB", resp.RegisteredAddress.PostalCode)
}

func TestAddressHandler_GetCompanyProfile_NoAddress(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().GetCompanyProfile(mock.Anything, "00000006").Return(&domain.CompanyProfile{
		CompanyNumber: "00000006",
		CompanyName:   "DORMANT HOLDINGS LIMITED",
		CompanyStatus: "dissolved",
	}, nil)

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/00000006", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)

	assert.NotContains(t, body, "registeredOfficeAddress")
}

func TestAddressHandler_GetCompanyProfile_NotFound(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	registry.EXPECT().GetCompanyProfile(mock.Anything, "99999999").
		Return(nil, domain.NewCompanyNotFoundError("99999999"))

	engine := newAddressTestRouter(registry)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/99999999", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
}

func TestAddressHandler_RegisterAddressRoutes(t *testing.T) {
	registry := mocks.NewMockCompanyRegistry(t)
	engine := newAddressTestRouter(registry)

	routes := engine.Routes()

	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		paths = append(paths, r.Path)
	}

	assert.Contains(t, paths, "/api/v1/companies/:companyNumber")
	assert.Contains(t, paths, "/api/v1/companies/:companyNumber/registered-address")
}
