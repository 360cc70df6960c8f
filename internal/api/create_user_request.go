package api

// CreateUserRequest 定義建立新使用者的請求格式 (JSON)
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	FirstName    string `json:"firstName" example:"Joe"`
	LastName     string `json:"lastName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"joe@smith.com"`
	Password     string `json:"password" example:"joepassword"`
}
