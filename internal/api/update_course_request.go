package api

// UpdateCourseRequest 定義更新課程的請求格式 (JSON)。
// title 與 description 必填；estimatedTime 與 materialsNeeded 未提供時保留原值。
// swagger:model UpdateCourseRequest
type UpdateCourseRequest struct {
	Title           *string `json:"title" example:"Build a Basic Bookcase"`
	Description     *string `json:"description" example:"High-end furniture projects are great..."`
	EstimatedTime   *string `json:"estimatedTime" example:"12 hours"`
	MaterialsNeeded *string `json:"materialsNeeded" example:"* 1/2 x 3/4 inch parting strip"`
}
