package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Firstname string `json:"firstname" validate:"required,max=255" example:"Alice"`
	Lastname  string `json:"lastname" validate:"required,max=255" example:"Smith"`
	Email     string `json:"email" validate:"required,email,max=255" example:"alice@example.com"`
	Phone     string `json:"phone" validate:"omitempty,max=20" example:"+60123456789"`
	Password  string `json:"password" validate:"required,min=8" example:"Secret123!"`
	Status    string `json:"status" validate:"required,oneof=active inactive" example:"active"`
}
