package repositories

import (
	"context"

	"insure-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PolicyRepository struct {
	DB *pgxpool.Pool
}

func NewPolicyRepository(db *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{DB: db}
}

const policyColumns = `id, customer_id, insurance_company_id, product_type, policy_number,
         COALESCE(premium_amount, 0) as premium_amount, policy_start_date, policy_end_date, status,
         COALESCE(vehicle_number, '') as vehicle_number, COALESCE(notes, '') as notes, created_at, updated_at`

func scanPolicy(row interface{ Scan(...interface{}) error }) (*models.Policy, error) {
	var p models.Policy
	err := row.Scan(&p.ID, &p.CustomerID, &p.InsuranceCompanyID, &p.ProductType, &p.PolicyNumber,
		&p.PremiumAmount, &p.StartDate, &p.EndDate, &p.Status, &p.VehicleNumber, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PolicyRepository) Create(ctx context.Context, p *models.Policy) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO policies(id, customer_id, insurance_company_id, product_type, policy_number,
            premium_amount, policy_start_date, policy_end_date, status, vehicle_number, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''))
         RETURNING created_at, updated_at`,
		p.ID, p.CustomerID, p.InsuranceCompanyID, p.ProductType, p.PolicyNumber,
		p.PremiumAmount, p.StartDate, p.EndDate, p.Status, p.VehicleNumber, p.Notes,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapWriteError(err)
}

func (r *PolicyRepository) Get(ctx context.Context, id string) (*models.Policy, error) {
	return scanPolicy(r.DB.QueryRow(ctx,
		`SELECT `+policyColumns+` FROM policies WHERE id=$1`, id))
}

// List returns policies newest first, optionally filtered by status.
func (r *PolicyRepository) List(ctx context.Context, status string) ([]*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var policies []*models.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// ListByCustomer returns a customer's policies, soonest expiry first.
func (r *PolicyRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Policy, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+policyColumns+` FROM policies WHERE customer_id=$1 ORDER BY policy_end_date ASC`,
		customerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var policies []*models.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// Update writes the full merged record and bumps updated_at. The service
// layer merges request fields onto the stored policy before calling this.
func (r *PolicyRepository) Update(ctx context.Context, p *models.Policy) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE policies SET
            customer_id=$1, insurance_company_id=$2, product_type=$3, policy_number=$4,
            premium_amount=$5, policy_start_date=$6, policy_end_date=$7, status=$8,
            vehicle_number=NULLIF($9, ''), notes=NULLIF($10, ''), updated_at=CURRENT_TIMESTAMP
         WHERE id=$11`,
		p.CustomerID, p.InsuranceCompanyID, p.ProductType, p.PolicyNumber,
		p.PremiumAmount, p.StartDate, p.EndDate, p.Status, p.VehicleNumber, p.Notes, p.ID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM policies WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
