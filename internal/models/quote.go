package models

// QuoteRequest is a public quote-form submission.
type QuoteRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	InsuranceType string   `json:"insurance_type"`
	VehicleNumber string   `json:"vehicle_number"`
	DateOfBirth   string   `json:"dob"`
	Message       string   `json:"message"`
	Destinations  []string `json:"destinations"`
	TravelStart   string   `json:"travel_start_date"`
	TravelEnd     string   `json:"travel_end_date"`
}
