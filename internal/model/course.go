package model

import "time"

// Course 課程，每筆課程屬於一位擁有者 (UserID)。
type Course struct {
	ID              int       `db:"id" json:"id"`
	Title           string    `db:"title" json:"title" validate:"required"`
	Description     string    `db:"description" json:"description" validate:"required"`
	EstimatedTime   *string   `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded *string   `db:"materials_needed" json:"materialsNeeded"`
	UserID          int       `db:"user_id" json:"userId"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`

	// User 為 JOIN 查詢時一併載入的擁有者資料
	User *User `db:"-" json:"User,omitempty" validate:"-"`
}
