package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

const usersPrimaryKey = "users_pkey"

const migrationUsers = `
CREATE TABLE IF NOT EXISTS users (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    role            TEXT NOT NULL,
    avatar          TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PrincipalRepository struct {
	pool *pgxpool.Pool
}

func NewPrincipalRepository(pool *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{pool: pool}
}

func (r *PrincipalRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, migrationUsers); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}

func (r *PrincipalRepository) Create(ctx context.Context, p *domain.Principal) error {
	const query = `INSERT INTO users (id, name, email, hashed_password, role, avatar, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, domain.NormalizeEmail(p.Email), p.PasswordHash, string(p.Role), p.Avatar, p.CreatedAt)
	if err != nil {
		return userInsertErr(err)
	}
	return nil
}

// userInsertErr tells an id collision apart from a taken email.
func userInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == usersPrimaryKey {
			return domain.ErrDuplicateID
		}
		return domain.ErrEmailTaken
	}
	return fmt.Errorf("insert user: %w", err)
}

func (r *PrincipalRepository) FindByID(ctx context.Context, id string) (*domain.Principal, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	return r.findOne(ctx, `WHERE email = $1`, domain.NormalizeEmail(email))
}

func (r *PrincipalRepository) findOne(ctx context.Context, where string, arg string) (*domain.Principal, error) {
	var (
		p    domain.Principal
		role string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, hashed_password, role, avatar, created_at FROM users `+where, arg,
	).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &role, &p.Avatar, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	p.Role = domain.Role(role)
	return &p, nil
}
