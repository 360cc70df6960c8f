package store

import (
	"context"
	"fmt"

	"courses-api/internal/database"
	"courses-api/internal/model"
)

const courseColumns = `c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	 u.id, u.first_name, u.last_name, u.email_address`

func scanCourse(row interface{ Scan(dest ...any) error }) (*model.Course, error) {
	c := &model.Course{User: &model.User{}}
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.User.ID,
		&c.User.FirstName,
		&c.User.LastName,
		&c.User.EmailAddress,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func ListCourses(ctx context.Context, db database.DB) ([]model.Course, error) {
	rows, err := db.Query(ctx,
		`SELECT `+courseColumns+`
		 FROM courses c JOIN users u ON u.id = c.user_id
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCourses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCourses: %w", err)
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCourses: %w", err)
	}
	return courses, nil
}

func GetCourseByID(ctx context.Context, db database.DB, courseID int) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`SELECT `+courseColumns+`
		 FROM courses c JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`,
		courseID,
	)
	c, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("GetCourseByID: %w", err)
	}
	return c, nil
}

// CreateCourse 先執行宣告式欄位檢查再寫入。
func CreateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	if err := checkCourse(c); err != nil {
		return nil, err
	}
	row := db.QueryRow(ctx,
		`INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Title,
		c.Description,
		c.EstimatedTime,
		c.MaterialsNeeded,
		c.UserID,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateCourse: %w", err)
	}
	return c, nil
}

// UpdateCourse 與建立時套用同一組宣告式欄位檢查。
func UpdateCourse(ctx context.Context, db database.DB, c *model.Course) error {
	if err := checkCourse(c); err != nil {
		return err
	}
	_, err := db.Exec(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = now()
		 WHERE id = $5`,
		c.Title,
		c.Description,
		c.EstimatedTime,
		c.MaterialsNeeded,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCourse: %w", err)
	}
	return nil
}

func DeleteCourse(ctx context.Context, db database.DB, courseID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM courses WHERE id = $1`,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCourse: %w", err)
	}
	return nil
}
