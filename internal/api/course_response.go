package api

import "courses-api/internal/model"

// CourseResponse 定義回傳的課程欄位，含擁有者公開資料，排除審計時間戳
// swagger:model CourseResponse
type CourseResponse struct {
	ID              int          `json:"id" example:"1"`
	Title           string       `json:"title" example:"Build a Basic Bookcase"`
	Description     string       `json:"description" example:"High-end furniture projects are great..."`
	EstimatedTime   *string      `json:"estimatedTime"`
	MaterialsNeeded *string      `json:"materialsNeeded"`
	UserID          int          `json:"userId" example:"1"`
	User            UserResponse `json:"User"`
}

// CourseEnvelope GET /courses/{id} 響應外層
// swagger:model CourseEnvelope
type CourseEnvelope struct {
	Course CourseResponse `json:"course"`
}

// CoursesEnvelope GET /courses 響應外層
// swagger:model CoursesEnvelope
type CoursesEnvelope struct {
	Courses []CourseResponse `json:"courses"`
}

func NewCourseResponse(c *model.Course) CourseResponse {
	resp := CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
	if c.User != nil {
		resp.User = NewUserResponse(c.User)
	}
	return resp
}
