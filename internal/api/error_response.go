package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message"`

	// stack 僅在非 production 環境填入
	Stack string `json:"stack,omitempty"`
}
