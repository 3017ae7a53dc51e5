// Package domain contains core business entities and rules.
package domain

// Address is the registered office address of a UK company.
// It is an immutable value object - optional fields are left empty
// when the registry holds no value for them.
type Address struct {
	// AddressLine1 is the first address line. Always present on a
	// well-formed registry record.
	AddressLine1 string

	// AddressLine2 is the second address line, if any.
	AddressLine2 string

	// Locality is the post town (e.g. "Cardiff").
	Locality string

	// PostalCode is the postcode. Always present on a well-formed record.
	PostalCode string

	// Country is the country of the address.
	Country string

	// Region is the county or region.
	Region string

	// Premises is the building name or number.
	Premises string

	// CareOf is the care-of name, when registered.
	CareOf string

	// POBox is the PO box, when registered.
	POBox string
}

// CompanyProfile is the company record the lookup operates on.
// Only the subset of the registry profile this service cares about
// is modelled; the registered office address is the reason it exists.
type CompanyProfile struct {
	// CompanyNumber is the registry's unique identifier for the company.
	CompanyNumber string

	// CompanyName is the registered name.
	CompanyName string

	// CompanyStatus is the registry status (e.g. "active", "dissolved").
	CompanyStatus string

	// Type is the company type (e.g. "ltd", "plc").
	Type string

	// DateOfCreation is the incorporation date as reported by the
	// registry, kept as the registry's own string representation.
	DateOfCreation string

	// Jurisdiction is the registering jurisdiction (e.g. "england-wales").
	Jurisdiction string

	// RegisteredOfficeAddress is the registered office address.
	// Nil when the registry record carries none.
	RegisteredOfficeAddress *Address
}
