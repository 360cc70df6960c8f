package api

// CreateCourseRequest 定義建立新課程的請求格式 (JSON)。
// 擁有者一律為通過驗證的使用者，body 內提供的 userId 會被忽略。
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	Title           string  `json:"title" example:"Build a Basic Bookcase"`
	Description     string  `json:"description" example:"High-end furniture projects are great..."`
	EstimatedTime   *string `json:"estimatedTime" example:"12 hours"`
	MaterialsNeeded *string `json:"materialsNeeded" example:"* 1/2 x 3/4 inch parting strip"`
}
