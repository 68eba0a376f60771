package repositories

import (
	"context"

	"insure-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

const companyColumns = `id, name, category, COALESCE(logo_url, '') as logo_url, is_active, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, c *models.InsuranceCompany) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO insurance_companies(id, name, category, logo_url, is_active)
         VALUES($1, $2, $3, NULLIF($4, ''), $5)
         RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Category, c.LogoURL, c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

func (r *CompanyRepository) Get(ctx context.Context, id string) (*models.InsuranceCompany, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM insurance_companies WHERE id=$1`, id)

	var c models.InsuranceCompany
	err := row.Scan(&c.ID, &c.Name, &c.Category, &c.LogoURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// List returns companies sorted by name. With activeOnly set, inactive
// partners are filtered out (the public site only shows active carriers).
func (r *CompanyRepository) List(ctx context.Context, activeOnly bool) ([]*models.InsuranceCompany, error) {
	query := `SELECT ` + companyColumns + ` FROM insurance_companies`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var companies []*models.InsuranceCompany
	for rows.Next() {
		var c models.InsuranceCompany
		err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.LogoURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		companies = append(companies, &c)
	}
	return companies, rows.Err()
}

// Update applies a partial field merge and bumps updated_at.
func (r *CompanyRepository) Update(ctx context.Context, id string, req *models.UpdateCompanyRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE insurance_companies SET
            name = COALESCE($1, name),
            category = COALESCE($2, category),
            logo_url = COALESCE($3, logo_url),
            is_active = COALESCE($4, is_active),
            updated_at = CURRENT_TIMESTAMP
         WHERE id=$5`,
		req.Name, req.Category, req.LogoURL, req.IsActive, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetLogoURL stores the public URL of an uploaded partner logo.
func (r *CompanyRepository) SetLogoURL(ctx context.Context, id, logoURL string) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE insurance_companies SET logo_url=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		logoURL, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a company. The policies foreign key is ON DELETE RESTRICT,
// so deleting a carrier that still backs policies returns ErrInUse.
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM insurance_companies WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
