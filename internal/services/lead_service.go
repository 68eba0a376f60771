package services

import (
	"context"
	"errors"
	"strings"

	"insure-backend/internal/cache"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
)

var ErrInvalidInput = errors.New("invalid input")

type LeadService struct {
	Leads *repositories.LeadRepository
}

func NewLeadService(leads *repositories.LeadRepository) *LeadService {
	return &LeadService{Leads: leads}
}

func (s *LeadService) Get(ctx context.Context, id string) (*models.Lead, error) {
	return s.Leads.Get(ctx, id)
}

func (s *LeadService) List(ctx context.Context, status string) ([]*models.Lead, error) {
	if status != "" && !models.ValidLeadStatus(status) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown lead status "+status))
	}
	return s.Leads.List(ctx, status)
}

// Update applies a partial merge. Status transitions are unrestricted; the
// back office corrects records freely.
func (s *LeadService) Update(ctx context.Context, id string, req *models.UpdateLeadRequest) (*models.Lead, error) {
	if req.Status != nil && !models.ValidLeadStatus(*req.Status) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown lead status "+*req.Status))
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name cannot be blank"))
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("phone cannot be blank"))
	}
	if err := s.Leads.Update(ctx, id, req); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return s.Leads.Get(ctx, id)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.Leads.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}
