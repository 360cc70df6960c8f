package store

import (
	"context"
	"errors"
	"fmt"

	"courses-api/internal/database"
	"courses-api/internal/model"
	"courses-api/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation PostgreSQL error code 23505
const uniqueViolation = "23505"

var hashPassword = service.HashPassword

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email_address, password, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email_address, password, created_at, updated_at
		 FROM users WHERE email_address = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.EmailAddress,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 先執行宣告式欄位檢查再哈希密碼寫入，email 唯一性違反回報為 ValidationError。
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if err := checkUser(u); err != nil {
		return nil, err
	}

	hash, err := hashPassword(u.Password)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	u.PasswordHash = hash

	row := db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email_address, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.FirstName,
		u.LastName,
		u.EmailAddress,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &ValidationError{Messages: []string{"The email you entered already exists"}}
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
