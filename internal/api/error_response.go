package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"user not found"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// ValidationErrorResponse 欄位級驗證錯誤，message 取第一筆錯誤訊息
// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string              `json:"message" example:"The email has already been taken."`
	Errors  map[string][]string `json:"errors"`
}

// NewValidationErrorResponse 以欄位錯誤表組出回應，message 為任一欄位的第一筆錯誤
func NewValidationErrorResponse(errs map[string][]string) ValidationErrorResponse {
	resp := ValidationErrorResponse{Message: "The given data was invalid.", Errors: errs}
	for _, msgs := range errs {
		if len(msgs) > 0 {
			resp.Message = msgs[0]
			break
		}
	}
	return resp
}
