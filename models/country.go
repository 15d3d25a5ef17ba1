package models

// Country is a read-only reference-data row seeded by migration.
type Country struct {
	// Code is the ISO 3166-1 alpha-2 country code, upper case.
	Code string `json:"code"`

	// Name is the English short name of the country.
	Name string `json:"name"`

	// DialCode is the international telephone prefix (e.g. "+49").
	DialCode string `json:"dial_code"`
}
