package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"insure-backend/internal/cache"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
)

// ErrLogoStorageDisabled is returned when no object storage is configured.
var ErrLogoStorageDisabled = errors.New("logo storage is not configured")

// LogoUploader stores a company logo and returns its public URL. Nil when
// object storage is not configured.
type LogoUploader interface {
	UploadLogo(ctx context.Context, companyID, ext, contentType string, body io.Reader) (string, error)
}

type CompanyService struct {
	Companies *repositories.CompanyRepository
	Logos     LogoUploader
}

func NewCompanyService(companies *repositories.CompanyRepository, logos LogoUploader) *CompanyService {
	return &CompanyService{Companies: companies, Logos: logos}
}

func (s *CompanyService) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.InsuranceCompany, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name is required"))
	}
	if !models.ValidCompanyCategory(req.Category) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown company category "+req.Category))
	}

	company := &models.InsuranceCompany{
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}
	if err := s.Companies.Create(ctx, company); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.InsuranceCompany, error) {
	return s.Companies.Get(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, activeOnly bool) ([]*models.InsuranceCompany, error) {
	return s.Companies.List(ctx, activeOnly)
}

func (s *CompanyService) Update(ctx context.Context, id string, req *models.UpdateCompanyRequest) (*models.InsuranceCompany, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name cannot be blank"))
	}
	if req.Category != nil && !models.ValidCompanyCategory(*req.Category) {
		return nil, errors.Join(ErrInvalidInput, errors.New("unknown company category "+*req.Category))
	}
	if err := s.Companies.Update(ctx, id, req); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return s.Companies.Get(ctx, id)
}

// Delete removes a company. Carriers referenced by policies are protected
// by the foreign key and surface as ErrInUse.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := s.Companies.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// UploadLogo stores the image and records its URL on the company record.
func (s *CompanyService) UploadLogo(ctx context.Context, id, ext, contentType string, body io.Reader) (string, error) {
	if s.Logos == nil {
		return "", ErrLogoStorageDisabled
	}
	if _, err := s.Companies.Get(ctx, id); err != nil {
		return "", err
	}
	url, err := s.Logos.UploadLogo(ctx, id, ext, contentType, body)
	if err != nil {
		return "", err
	}
	if err := s.Companies.SetLogoURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
