package models

import "time"

// Insurance company categories
const (
	CompanyCategoryGeneral = "general"
	CompanyCategoryHealth  = "health"
	CompanyCategoryLife    = "life"
)

type InsuranceCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	LogoURL   string    `json:"logo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCompanyRequest represents the request body for creating an insurance company
type CreateCompanyRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	LogoURL  string `json:"logo_url"`
}

// UpdateCompanyRequest represents the request body for updating an insurance company.
// Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	LogoURL  *string `json:"logo_url"`
	IsActive *bool   `json:"is_active"`
}

// ValidCompanyCategory reports whether c is one of the known categories.
func ValidCompanyCategory(c string) bool {
	switch c {
	case CompanyCategoryGeneral, CompanyCategoryHealth, CompanyCategoryLife:
		return true
	}
	return false
}
