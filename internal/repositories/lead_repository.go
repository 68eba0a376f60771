package repositories

import (
	"context"

	"insure-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeadRepository struct {
	DB *pgxpool.Pool
}

func NewLeadRepository(db *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, phone, COALESCE(email, '') as email, insurance_type,
         COALESCE(vehicle_number, '') as vehicle_number, COALESCE(dob, '') as dob,
         COALESCE(message, '') as message, status, source, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, l *models.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO leads(id, name, phone, email, insurance_type, vehicle_number, dob, message, status, source)
         VALUES($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)
         RETURNING created_at, updated_at`,
		l.ID, l.Name, l.Phone, l.Email, l.InsuranceType, l.VehicleNumber, l.DateOfBirth, l.Message, l.Status, l.Source,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	return mapError(err)
}

func (r *LeadRepository) Get(ctx context.Context, id string) (*models.Lead, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id=$1`, id)

	var l models.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.InsuranceType, &l.VehicleNumber,
		&l.DateOfBirth, &l.Message, &l.Status, &l.Source, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &l, nil
}

// List returns leads newest first, optionally filtered by status.
func (r *LeadRepository) List(ctx context.Context, status string) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
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

	var leads []*models.Lead
	for rows.Next() {
		var l models.Lead
		err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.InsuranceType, &l.VehicleNumber,
			&l.DateOfBirth, &l.Message, &l.Status, &l.Source, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}

// ListRecent returns the n most recently created leads.
func (r *LeadRepository) ListRecent(ctx context.Context, n int) ([]*models.Lead, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		var l models.Lead
		err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.InsuranceType, &l.VehicleNumber,
			&l.DateOfBirth, &l.Message, &l.Status, &l.Source, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}

// Update applies a partial field merge and bumps updated_at.
func (r *LeadRepository) Update(ctx context.Context, id string, req *models.UpdateLeadRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE leads SET
            name = COALESCE($1, name),
            phone = COALESCE($2, phone),
            email = COALESCE($3, email),
            insurance_type = COALESCE($4, insurance_type),
            vehicle_number = COALESCE($5, vehicle_number),
            dob = COALESCE($6, dob),
            message = COALESCE($7, message),
            status = COALESCE($8, status),
            updated_at = CURRENT_TIMESTAMP
         WHERE id=$9`,
		req.Name, req.Phone, req.Email, req.InsuranceType, req.VehicleNumber, req.DateOfBirth, req.Message, req.Status, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
