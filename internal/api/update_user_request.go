package api

// UpdateUserRequest 與 CreateUserRequest 的差別只在 password 可留空，
// 留空時保留原本的密碼雜湊
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Firstname string `json:"firstname" validate:"required,max=255" example:"Alice"`
	Lastname  string `json:"lastname" validate:"required,max=255" example:"Smith"`
	Email     string `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Phone     string `json:"phone" validate:"omitempty,max=20" example:"+60123456789"`
	Password  string `json:"password" validate:"omitempty,min=8" example:"NewSecret456!"`
	Status    string `json:"status" validate:"required,oneof=active inactive" example:"inactive"`
}
