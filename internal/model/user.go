package model

import "time"

// User 使用者帳號。Password 僅在建立時攜帶明文，寫入前會被哈希，永不序列化。
type User struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName" validate:"required"`
	LastName     string    `db:"last_name" json:"lastName" validate:"required"`
	EmailAddress string    `db:"email_address" json:"emailAddress" validate:"required,email"`
	Password     string    `db:"-" json:"-" validate:"required"`
	PasswordHash string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
