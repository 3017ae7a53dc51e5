// Package companieshouse integrates with the UK Companies House public data
// API. It translates the API's wire format into domain types and its HTTP
// failure modes into the domain error taxonomy, so nothing upstream of this
// package ever sees a status code or a snake_case key.
package companieshouse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/addresskit/companieshouse/internal/adapters/clients"
	"github.com/addresskit/companieshouse/internal/domain"
	"github.com/addresskit/companieshouse/internal/platform/logging"
)

// ServiceName identifies the registry in logs, traces and health checks.
const ServiceName = "companies-house"

// retryAfterHeader is the throttling hint header sent with HTTP 429.
const retryAfterHeader = "Retry-After"

// ClientConfig contains configuration for the registry client.
type ClientConfig struct {
	// Client is the HTTP client to use for requests. Its BaseURL should
	// point at the Companies House API and its AuthFunc should carry the
	// basic-auth API key.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Client implements ports.CompanyRegistry against the Companies House
// public data API.
//
// It deliberately calls the full company profile endpoint and extracts the
// registered office address from it, rather than the narrower
// registered-office-address endpoint: only the profile payload carries the
// care_of and po_box fields.
//
// The client holds no mutable state after construction and is safe for
// concurrent use as long as the injected HTTP client is.
type Client struct {
	client *clients.Client
	logger *slog.Logger
}

// NewClient creates a new Companies House registry client.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Client == nil {
		panic("companieshouse: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client: cfg.Client,
		logger: logger,
	}
}

// companyProfileResponse is the external DTO for the company profile
// endpoint. Never exposed outside this package.
type companyProfileResponse struct {
	CompanyNumber           string                     `json:"company_number"`
	CompanyName             string                     `json:"company_name"`
	CompanyStatus           string                     `json:"company_status"`
	Type                    string                     `json:"type"`
	DateOfCreation          string                     `json:"date_of_creation"`
	Jurisdiction            string                     `json:"jurisdiction"`
	RegisteredOfficeAddress *registeredAddressResponse `json:"registered_office_address"`
}

// registeredAddressResponse is the nested address DTO. Field names follow
// the API's snake_case keys one-to-one.
type registeredAddressResponse struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Locality     string `json:"locality"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	Premises     string `json:"premises"`
	CareOf       string `json:"care_of"`
	POBox        string `json:"po_box"`
}

// LookupRegisteredAddress returns the registered office address for a
// company number. Implements ports.CompanyRegistry.
//
// The operation is all-or-nothing: it returns a populated address or a
// classified error, never a nil address on the success path.
func (c *Client) LookupRegisteredAddress(ctx context.Context, companyNumber string) (*domain.Address, error) {
	number, err := validateCompanyNumber(companyNumber)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithCompanyNumber(ctx, number)
	c.logger.DebugContext(ctx, "fetching registered address",
		slog.String("company_number", number))

	profile, err := c.fetchProfile(ctx, number)
	if err != nil {
		return nil, err
	}

	if profile.RegisteredOfficeAddress == nil {
		return nil, domain.NewInvalidResponseError(
			fmt.Sprintf("no registered address found for company %s", number), nil)
	}

	c.logger.DebugContext(ctx, "retrieved registered address",
		slog.String("company_number", number))

	return translateAddress(profile.RegisteredOfficeAddress), nil
}

// GetCompanyProfile returns the full company profile.
// Implements ports.CompanyRegistry. Unlike the address lookup, a profile
// without a registered office address is a valid result here.
func (c *Client) GetCompanyProfile(ctx context.Context, companyNumber string) (*domain.CompanyProfile, error) {
	number, err := validateCompanyNumber(companyNumber)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithCompanyNumber(ctx, number)
	c.logger.DebugContext(ctx, "fetching company profile",
		slog.String("company_number", number))

	profile, err := c.fetchProfile(ctx, number)
	if err != nil {
		return nil, err
	}

	return translateProfile(profile), nil
}

// fetchProfile performs the GET /company/{companyNumber} call and decodes
// the body. All transport and status failures come back classified.
func (c *Client) fetchProfile(ctx context.Context, companyNumber string) (*companyProfileResponse, error) {
	path := "/company/" + url.PathEscape(companyNumber)

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to connect to Companies House API", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapErrorStatus(ctx, resp, companyNumber)
	}

	var profile companyProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, domain.NewInvalidResponseError(
			fmt.Sprintf("failed to parse response for company %s", companyNumber), err)
	}

	return &profile, nil
}

// mapErrorStatus is the status code decision table. Evaluated top to
// bottom: the specifically classified codes first, then server errors,
// then everything else as an unclassified upstream failure.
func (c *Client) mapErrorStatus(ctx context.Context, resp *http.Response, companyNumber string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewCompanyNotFoundError(companyNumber)

	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.NewRateLimitError(c.parseRetryAfter(ctx, resp.Header))

	case resp.StatusCode == http.StatusUnauthorized:
		return domain.NewAuthenticationError("check API key configuration")

	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewUpstreamError(
			fmt.Sprintf("Companies House API server error (HTTP %d)", resp.StatusCode), nil)

	default:
		// The context logger already carries the company number.
		logging.FromContext(ctx).WarnContext(ctx, "unexpected client error from registry",
			slog.Int("status", resp.StatusCode))

		return domain.NewUpstreamError(
			fmt.Sprintf("client error: HTTP %d", resp.StatusCode), nil)
	}
}

// parseRetryAfter extracts the Retry-After hint as whole seconds.
//
// A missing header is normal and yields nil. A malformed header also
// yields nil: the parse failure is logged and swallowed, it must never
// escalate a rate-limit error into something harder.
func (c *Client) parseRetryAfter(ctx context.Context, headers http.Header) *int64 {
	value := headers.Get(retryAfterHeader)
	if value == "" {
		return nil
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || seconds < 0 {
		c.logger.WarnContext(ctx, "failed to parse Retry-After header",
			slog.String("value", value))

		return nil
	}

	return &seconds
}

// validateCompanyNumber rejects blank input before any I/O happens.
// Returns the trimmed company number on success.
func validateCompanyNumber(companyNumber string) (string, error) {
	number := strings.TrimSpace(companyNumber)
	if number == "" {
		return "", domain.NewValidationError("companyNumber", "must not be blank")
	}

	return number, nil
}

// translateAddress converts the wire address to the domain value object.
// Key renaming only - values pass through untouched.
func translateAddress(ext *registeredAddressResponse) *domain.Address {
	return &domain.Address{
		AddressLine1: ext.AddressLine1,
		AddressLine2: ext.AddressLine2,
		Locality:     ext.Locality,
		PostalCode:   ext.PostalCode,
		Country:      ext.Country,
		Region:       ext.Region,
		Premises:     ext.Premises,
		CareOf:       ext.CareOf,
		POBox:        ext.POBox,
	}
}

// translateProfile converts the wire profile to the domain type.
func translateProfile(ext *companyProfileResponse) *domain.CompanyProfile {
	profile := &domain.CompanyProfile{
		CompanyNumber:  ext.CompanyNumber,
		CompanyName:    ext.CompanyName,
		CompanyStatus:  ext.CompanyStatus,
		Type:           ext.Type,
		DateOfCreation: ext.DateOfCreation,
		Jurisdiction:   ext.Jurisdiction,
	}

	if ext.RegisteredOfficeAddress != nil {
		profile.RegisteredOfficeAddress = translateAddress(ext.RegisteredOfficeAddress)
	}

	return profile
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *Client) Name() string {
	return ServiceName
}

// Check reports whether the registry is reachable with working
// credentials. Implements ports.HealthChecker.
//
// Any HTTP response except 401 counts as healthy: the probe company may
// legitimately 404 or be throttled, but an auth rejection means every
// lookup will fail until the key is fixed.
func (c *Client) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/company/00000006")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("registry rejected credentials (HTTP %d)", resp.StatusCode)
	}

	return nil
}
