package services

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"insure-backend/internal/cache"
	"insure-backend/internal/models"
	"insure-backend/internal/timeutil"

	"github.com/nyaruka/phonenumbers"
)

// InsuranceTypes is the product catalogue offered on the quote form.
var InsuranceTypes = []string{
	"Two-Wheeler Insurance",
	"Car Insurance",
	"Commercial Vehicle Insurance",
	"Travel Insurance",
	"Shopkeeper Insurance",
	"Commercial Business Insurance",
	"Health Insurance",
	"Life Insurance",
}

// Products that insure a registered vehicle and therefore need its number.
var motorProducts = map[string]bool{
	"Two-Wheeler Insurance":        true,
	"Car Insurance":                true,
	"Commercial Vehicle Insurance": true,
}

// Products priced by the applicant's age.
var ageRatedProducts = map[string]bool{
	"Travel Insurance": true,
	"Health Insurance": true,
	"Life Insurance":   true,
}

const phoneRegion = "IN"

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid quote request: " + strings.Join(parts, "; ")
}

// LeadCreator persists a new lead.
type LeadCreator interface {
	Create(ctx context.Context, l *models.Lead) error
}

// QuoteMailer notifies the back office about a new quote. Implementations
// report Configured()=false when no SMTP credentials are present.
type QuoteMailer interface {
	Configured() bool
	SendQuoteNotification(q *models.QuoteRequest) error
}

// QuoteRelay forwards a submission to the external form relay.
type QuoteRelay interface {
	Configured() bool
	Forward(ctx context.Context, name, phone, email, insuranceType, vehicleNumber, message string) error
}

// QuoteService accepts public quote submissions. Persisting the lead is the
// only required effect; email and relay are best-effort notifications.
type QuoteService struct {
	Leads  LeadCreator
	Mailer QuoteMailer
	Relay  QuoteRelay
}

func NewQuoteService(leads LeadCreator, mailer QuoteMailer, relay QuoteRelay) *QuoteService {
	return &QuoteService{Leads: leads, Mailer: mailer, Relay: relay}
}

// Submit validates the request, stores it as a new lead, then fires the
// notification side effects. A side-effect failure is logged but never
// surfaced to the submitter; a storage failure is.
func (s *QuoteService) Submit(ctx context.Context, q *models.QuoteRequest) (*models.Lead, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		Name:          strings.TrimSpace(q.Name),
		Phone:         strings.TrimSpace(q.Phone),
		Email:         strings.TrimSpace(q.Email),
		InsuranceType: q.InsuranceType,
		VehicleNumber: strings.ToUpper(strings.TrimSpace(q.VehicleNumber)),
		DateOfBirth:   q.DateOfBirth,
		Message:       composeMessage(q),
		Status:        models.LeadStatusNew,
		Source:        "website",
	}
	if err := s.Leads.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save quote request: %w", err)
	}
	cache.InvalidateDashboard(ctx)

	if s.Mailer != nil && s.Mailer.Configured() {
		if err := s.Mailer.SendQuoteNotification(q); err != nil {
			log.Printf("[Quote] email notification failed for lead %s: %v", lead.ID, err)
		}
	}
	if s.Relay != nil && s.Relay.Configured() {
		err := s.Relay.Forward(ctx, lead.Name, lead.Phone, lead.Email,
			lead.InsuranceType, lead.VehicleNumber, lead.Message)
		if err != nil {
			log.Printf("[Quote] relay forward failed for lead %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}

// Validate checks a quote submission field by field and collects every
// problem instead of stopping at the first.
func Validate(q *models.QuoteRequest) error {
	fields := make(map[string]string)

	if strings.TrimSpace(q.Name) == "" {
		fields["name"] = "name is required"
	}

	phone := strings.TrimSpace(q.Phone)
	if phone == "" {
		fields["phone"] = "phone number is required"
	} else if num, err := phonenumbers.Parse(phone, phoneRegion); err != nil || !phonenumbers.IsValidNumber(num) {
		fields["phone"] = "enter a valid phone number"
	}

	if email := strings.TrimSpace(q.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fields["email"] = "enter a valid email address"
		}
	}

	if !validInsuranceType(q.InsuranceType) {
		fields["insurance_type"] = "select a valid insurance type"
	}

	if motorProducts[q.InsuranceType] && strings.TrimSpace(q.VehicleNumber) == "" {
		fields["vehicle_number"] = "vehicle number is required for " + q.InsuranceType
	}

	if ageRatedProducts[q.InsuranceType] {
		if q.DateOfBirth == "" {
			fields["dob"] = "date of birth is required for " + q.InsuranceType
		} else if dob, err := time.Parse(timeutil.DateLayout, q.DateOfBirth); err != nil {
			fields["dob"] = "date of birth must be YYYY-MM-DD"
		} else if dob.After(timeutil.Now()) {
			fields["dob"] = "date of birth cannot be in the future"
		}
	}

	if q.InsuranceType == "Travel Insurance" {
		validateTravel(q, fields)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateTravel(q *models.QuoteRequest, fields map[string]string) {
	if len(q.Destinations) == 0 {
		fields["destinations"] = "at least one destination is required"
	}

	var start, end time.Time
	var err error
	if q.TravelStart == "" {
		fields["travel_start_date"] = "travel start date is required"
	} else if start, err = time.Parse(timeutil.DateLayout, q.TravelStart); err != nil {
		fields["travel_start_date"] = "travel start date must be YYYY-MM-DD"
	}
	if q.TravelEnd == "" {
		fields["travel_end_date"] = "travel end date is required"
	} else if end, err = time.Parse(timeutil.DateLayout, q.TravelEnd); err != nil {
		fields["travel_end_date"] = "travel end date must be YYYY-MM-DD"
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		fields["travel_end_date"] = "travel end date cannot be before the start date"
	}
}

func validInsuranceType(t string) bool {
	for _, known := range InsuranceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// composeMessage folds travel details into the free-text message so they
// survive in the lead record, which has no travel columns of its own.
func composeMessage(q *models.QuoteRequest) string {
	msg := strings.TrimSpace(q.Message)
	if q.InsuranceType != "Travel Insurance" {
		return msg
	}

	var parts []string
	if msg != "" {
		parts = append(parts, msg)
	}
	if len(q.Destinations) > 0 {
		parts = append(parts, "Destinations: "+strings.Join(q.Destinations, ", "))
	}
	if q.TravelStart != "" || q.TravelEnd != "" {
		parts = append(parts, fmt.Sprintf("Travel dates: %s to %s", q.TravelStart, q.TravelEnd))
	}
	return strings.Join(parts, " | ")
}
