package api

import (
	"time"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

// UserResponse 公開的使用者投影，永遠不含密碼雜湊
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice Smith"`
	Firstname string    `json:"firstname" example:"Alice"`
	Lastname  string    `json:"lastname" example:"Smith"`
	Email     string    `json:"email" example:"alice@example.com"`
	Phone     *string   `json:"phone" example:"+60123456789"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z07:00"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Phone:     u.Phone,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// swagger:model api.UserEnvelope
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// UserMessageResponse 帶訊息的使用者回應 (建立、更新成功時使用)
// swagger:model api.UserMessageResponse
type UserMessageResponse struct {
	Message string       `json:"message" example:"User created successfully"`
	User    UserResponse `json:"user"`
}
