package repositories

import (
	"context"

	"insure-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, password_hash, is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO users(id, name, email, password_hash, is_active)
         VALUES($1, $2, $3, $4, $5)
         RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.IsActive,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	return mapError(err)
}

func (r *UserRepository) Get(ctx context.Context, id string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id)

	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email)

	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, mapError(err)
}
