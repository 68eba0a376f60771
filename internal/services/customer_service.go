package services

import (
	"context"
	"errors"
	"strings"

	"insure-backend/internal/cache"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
)

type CustomerService struct {
	Customers *repositories.CustomerRepository
	Leads     *repositories.LeadRepository
	Policies  *repositories.PolicyRepository
}

func NewCustomerService(
	customers *repositories.CustomerRepository,
	leads *repositories.LeadRepository,
	policies *repositories.PolicyRepository,
) *CustomerService {
	return &CustomerService{Customers: customers, Leads: leads, Policies: policies}
}

func (s *CustomerService) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name is required"))
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("phone is required"))
	}

	customer := &models.Customer{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Address: req.Address,
		Notes:   req.Notes,
	}
	if err := s.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.Customers.Get(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.Customers.List(ctx)
}

// Policies lists a customer's policies, soonest-ending first. The customer
// must exist so a bad id reads as 404 rather than an empty list.
func (s *CustomerService) ListPolicies(ctx context.Context, id string) ([]*models.Policy, error) {
	if _, err := s.Customers.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.Policies.ListByCustomer(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name cannot be blank"))
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("phone cannot be blank"))
	}
	if err := s.Customers.Update(ctx, id, req); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return s.Customers.Get(ctx, id)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.Customers.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// ConvertLead turns a lead into a customer, marking the lead converted.
// The lead's quote details are preserved in the customer notes.
func (s *CustomerService) ConvertLead(ctx context.Context, leadID string) (*models.Customer, error) {
	lead, err := s.Leads.Get(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Status == models.LeadStatusConverted {
		return nil, errors.Join(ErrInvalidInput, errors.New("lead is already converted"))
	}

	customer := &models.Customer{
		Name:  lead.Name,
		Phone: lead.Phone,
		Email: lead.Email,
		Notes: conversionNotes(lead),
	}
	if err := s.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	converted := models.LeadStatusConverted
	if err := s.Leads.Update(ctx, leadID, &models.UpdateLeadRequest{Status: &converted}); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return customer, nil
}

func conversionNotes(lead *models.Lead) string {
	parts := []string{"Converted from lead (" + lead.InsuranceType + ")"}
	if lead.VehicleNumber != "" {
		parts = append(parts, "Vehicle: "+lead.VehicleNumber)
	}
	if lead.DateOfBirth != "" {
		parts = append(parts, "DOB: "+lead.DateOfBirth)
	}
	if lead.Message != "" {
		parts = append(parts, lead.Message)
	}
	return strings.Join(parts, ". ")
}
