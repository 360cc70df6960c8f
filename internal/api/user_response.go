package api

import "courses-api/internal/model"

// UserResponse 定義回傳的使用者公開欄位，永不包含密碼與審計時間戳
// swagger:model UserResponse
type UserResponse struct {
	ID           int    `json:"id" example:"1"`
	FirstName    string `json:"firstName" example:"Joe"`
	LastName     string `json:"lastName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"joe@smith.com"`
}

// UserEnvelope GET /users 響應外層
// swagger:model UserEnvelope
type UserEnvelope struct {
	User UserResponse `json:"User"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
