package repositories

import (
	"context"

	"insure-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `id, name, phone, COALESCE(email, '') as email,
         COALESCE(address, '') as address, COALESCE(notes, '') as notes, created_at, updated_at`

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO customers(id, name, phone, email, address, notes)
         VALUES($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
         RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Notes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

func (r *CustomerRepository) Get(ctx context.Context, id string) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)

	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	return count, mapError(err)
}

// Update applies a partial field merge and bumps updated_at.
func (r *CustomerRepository) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE customers SET
            name = COALESCE($1, name),
            phone = COALESCE($2, phone),
            email = COALESCE($3, email),
            address = COALESCE($4, address),
            notes = COALESCE($5, notes),
            updated_at = CURRENT_TIMESTAMP
         WHERE id=$6`,
		req.Name, req.Phone, req.Email, req.Address, req.Notes, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
