package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"insure-backend/internal/cache"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
	"insure-backend/internal/timeutil"
)

type PolicyService struct {
	Policies  *repositories.PolicyRepository
	Customers *repositories.CustomerRepository
	Companies *repositories.CompanyRepository
}

func NewPolicyService(
	policies *repositories.PolicyRepository,
	customers *repositories.CustomerRepository,
	companies *repositories.CompanyRepository,
) *PolicyService {
	return &PolicyService{Policies: policies, Customers: customers, Companies: companies}
}

func (s *PolicyService) Create(ctx context.Context, req *models.CreatePolicyRequest) (*models.Policy, error) {
	if strings.TrimSpace(req.PolicyNumber) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("policy number is required"))
	}
	if req.PremiumAmount < 0 {
		return nil, errors.Join(ErrInvalidInput, errors.New("premium amount cannot be negative"))
	}
	status := req.Status
	if status == "" {
		status = models.PolicyStatusActive
	}
	if !models.ValidPolicyStatus(status) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown policy status "+status))
	}

	start, err := parseDate(req.StartDate, "policy_start_date")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "policy_end_date")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, errors.Join(ErrInvalidInput, errors.New("policy end date cannot be before the start date"))
	}

	// Resolve references up front so the caller sees which one is missing
	// instead of a bare foreign-key failure.
	if _, err := s.Customers.Get(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Join(ErrInvalidInput, errors.New("customer does not exist"))
		}
		return nil, err
	}
	if _, err := s.Companies.Get(ctx, req.InsuranceCompanyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Join(ErrInvalidInput, errors.New("insurance company does not exist"))
		}
		return nil, err
	}

	policy := &models.Policy{
		CustomerID:         req.CustomerID,
		InsuranceCompanyID: req.InsuranceCompanyID,
		ProductType:        req.ProductType,
		PolicyNumber:       strings.TrimSpace(req.PolicyNumber),
		PremiumAmount:      req.PremiumAmount,
		StartDate:          start,
		EndDate:            end,
		Status:             status,
		VehicleNumber:      strings.ToUpper(strings.TrimSpace(req.VehicleNumber)),
		Notes:              req.Notes,
	}
	if err := s.Policies.Create(ctx, policy); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return policy, nil
}

func (s *PolicyService) Get(ctx context.Context, id string) (*models.Policy, error) {
	return s.Policies.Get(ctx, id)
}

func (s *PolicyService) List(ctx context.Context, status string) ([]*models.Policy, error) {
	if status != "" && !models.ValidPolicyStatus(status) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown policy status "+status))
	}
	return s.Policies.List(ctx, status)
}

// Update merges the request onto the stored policy and validates the
// combined result, so a date change is always checked against both dates.
func (s *PolicyService) Update(ctx context.Context, id string, req *models.UpdatePolicyRequest) (*models.Policy, error) {
	policy, err := s.Policies.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		policy.CustomerID = *req.CustomerID
	}
	if req.InsuranceCompanyID != nil {
		policy.InsuranceCompanyID = *req.InsuranceCompanyID
	}
	if req.ProductType != nil {
		policy.ProductType = *req.ProductType
	}
	if req.PolicyNumber != nil {
		policy.PolicyNumber = strings.TrimSpace(*req.PolicyNumber)
	}
	if req.PremiumAmount != nil {
		policy.PremiumAmount = *req.PremiumAmount
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate, "policy_start_date")
		if err != nil {
			return nil, err
		}
		policy.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate, "policy_end_date")
		if err != nil {
			return nil, err
		}
		policy.EndDate = end
	}
	if req.Status != nil {
		policy.Status = *req.Status
	}
	if req.VehicleNumber != nil {
		policy.VehicleNumber = strings.ToUpper(strings.TrimSpace(*req.VehicleNumber))
	}
	if req.Notes != nil {
		policy.Notes = *req.Notes
	}

	if policy.PolicyNumber == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("policy number cannot be blank"))
	}
	if policy.PremiumAmount < 0 {
		return nil, errors.Join(ErrInvalidInput, errors.New("premium amount cannot be negative"))
	}
	if !models.ValidPolicyStatus(policy.Status) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown policy status "+policy.Status))
	}
	if policy.EndDate.Before(policy.StartDate) {
		return nil, errors.Join(ErrInvalidInput, errors.New("policy end date cannot be before the start date"))
	}

	if err := s.Policies.Update(ctx, policy); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return policy, nil
}

func (s *PolicyService) Delete(ctx context.Context, id string) error {
	if err := s.Policies.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.Join(ErrInvalidInput, errors.New(field+" is required"))
	}
	t, err := time.ParseInLocation(timeutil.DateLayout, value, timeutil.IST)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidInput, errors.New(field+" must be YYYY-MM-DD"))
	}
	return t, nil
}
