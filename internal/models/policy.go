package models

import "time"

// Policy statuses
const (
	PolicyStatusActive    = "active"
	PolicyStatusExpired   = "expired"
	PolicyStatusRenewed   = "renewed"
	PolicyStatusCancelled = "cancelled"
	PolicyStatusPending   = "pending"
)

type Policy struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	InsuranceCompanyID string    `json:"insurance_company_id"`
	ProductType        string    `json:"product_type"`
	PolicyNumber       string    `json:"policy_number"`
	PremiumAmount      float64   `json:"premium_amount"`
	StartDate          time.Time `json:"policy_start_date"`
	EndDate            time.Time `json:"policy_end_date"`
	Status             string    `json:"status"`
	VehicleNumber      string    `json:"vehicle_number,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreatePolicyRequest represents the request body for recording a sold policy.
// Dates use the YYYY-MM-DD layout.
type CreatePolicyRequest struct {
	CustomerID         string  `json:"customer_id"`
	InsuranceCompanyID string  `json:"insurance_company_id"`
	ProductType        string  `json:"product_type"`
	PolicyNumber       string  `json:"policy_number"`
	PremiumAmount      float64 `json:"premium_amount"`
	StartDate          string  `json:"policy_start_date"`
	EndDate            string  `json:"policy_end_date"`
	Status             string  `json:"status"`
	VehicleNumber      string  `json:"vehicle_number"`
	Notes              string  `json:"notes"`
}

// UpdatePolicyRequest represents the request body for updating a policy.
// Nil fields are left unchanged.
type UpdatePolicyRequest struct {
	CustomerID         *string  `json:"customer_id"`
	InsuranceCompanyID *string  `json:"insurance_company_id"`
	ProductType        *string  `json:"product_type"`
	PolicyNumber       *string  `json:"policy_number"`
	PremiumAmount      *float64 `json:"premium_amount"`
	StartDate          *string  `json:"policy_start_date"`
	EndDate            *string  `json:"policy_end_date"`
	Status             *string  `json:"status"`
	VehicleNumber      *string  `json:"vehicle_number"`
	Notes              *string  `json:"notes"`
}

// ValidPolicyStatus reports whether s is one of the known policy statuses.
func ValidPolicyStatus(s string) bool {
	switch s {
	case PolicyStatusActive, PolicyStatusExpired, PolicyStatusRenewed,
		PolicyStatusCancelled, PolicyStatusPending:
		return true
	}
	return false
}
