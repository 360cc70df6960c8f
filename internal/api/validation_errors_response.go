package api

// ValidationErrorsResponse 欄位約束錯誤響應，每個違反的約束一則訊息
// swagger:model api.ValidationErrorsResponse
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}
