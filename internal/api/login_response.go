package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message     string       `json:"message" example:"Login successful"`
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string       `json:"token_type" example:"Bearer"`
	User        UserResponse `json:"user"`
}
