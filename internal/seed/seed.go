package seed

import (
	"context"
	"errors"
	"log"

	"insure-backend/internal/auth"
	"insure-backend/internal/config"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
)

// Carriers the advisory regularly places business with. Inserted once;
// reruns are no-ops thanks to the unique name constraint.
var defaultCompanies = []models.InsuranceCompany{
	{Name: "Bajaj Allianz General Insurance", Category: models.CompanyCategoryGeneral},
	{Name: "Tata AIG General Insurance", Category: models.CompanyCategoryGeneral},
	{Name: "ICICI Lombard General Insurance", Category: models.CompanyCategoryGeneral},
	{Name: "Go Digit General Insurance", Category: models.CompanyCategoryGeneral},
	{Name: "Liberty General Insurance", Category: models.CompanyCategoryGeneral},
	{Name: "Star Health Insurance", Category: models.CompanyCategoryHealth},
}

type Seeder struct {
	Users     *repositories.UserRepository
	Companies *repositories.CompanyRepository
	Cfg       *config.Config
}

func New(users *repositories.UserRepository, companies *repositories.CompanyRepository, cfg *config.Config) *Seeder {
	return &Seeder{Users: users, Companies: companies, Cfg: cfg}
}

// Run is idempotent: the admin user is created only when the users table is
// empty, and duplicate partner companies are skipped.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedCompanies(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.Cfg.Seed.AdminPassword == "" {
		log.Printf("[Seed] No users exist and SEED_ADMIN_PASSWORD is unset; skipping admin creation")
		return nil
	}

	hash, err := auth.HashPassword(s.Cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:         "Admin",
		Email:        s.Cfg.Seed.AdminEmail,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("[Seed] Created admin user %s", admin.Email)
	return nil
}

func (s *Seeder) seedCompanies(ctx context.Context) error {
	for i := range defaultCompanies {
		company := defaultCompanies[i]
		company.IsActive = true
		err := s.Companies.Create(ctx, &company)
		if err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				continue
			}
			return err
		}
		log.Printf("[Seed] Added partner company %s", company.Name)
	}
	return nil
}
