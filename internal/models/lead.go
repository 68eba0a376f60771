package models

import "time"

// Lead statuses follow the contact pipeline: every lead starts as "new".
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	InsuranceType string    `json:"insurance_type"`
	VehicleNumber string    `json:"vehicle_number,omitempty"`
	DateOfBirth   string    `json:"dob,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateLeadRequest represents the request body for updating a lead.
// Nil fields are left unchanged.
type UpdateLeadRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	InsuranceType *string `json:"insurance_type"`
	VehicleNumber *string `json:"vehicle_number"`
	DateOfBirth   *string `json:"dob"`
	Message       *string `json:"message"`
	Status        *string `json:"status"`
}

func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}
