// File: internal/repository/postgres_user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"health-insight/internal/database"
	"health-insight/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const pgErrUniqueViolation = "23505"

// PostgresUserRepository 以 PostgreSQL 實作 UserRepository
// Email 唯一性由 lower(email) 的 unique index 保證，並行註冊由資料庫序列化
type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	u := &model.User{Name: name, Email: email, PasswordHash: passwordHash}
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		name,
		email,
		passwordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, date_of_birth, gender, phone_number, created_at
		 FROM users WHERE lower(email) = lower($1)`,
		email,
	)
	return scanUser(row, "GetUserByEmail")
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, date_of_birth, gender, phone_number, created_at
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row, "GetUserByID")
}

// UpdateUserProfile 僅更新個人資料欄位；Email 建立後不可變更
func (r *PostgresUserRepository) UpdateUserProfile(ctx context.Context, u *model.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, date_of_birth = $2, gender = $3, phone_number = $4
		 WHERE id = $5`,
		u.Name,
		u.DateOfBirth,
		u.Gender,
		u.PhoneNumber,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row, op string) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.DateOfBirth,
		&u.Gender,
		&u.PhoneNumber,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
