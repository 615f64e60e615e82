package api

// UsersResponse 分頁查詢結果，欄位對齊前端既有的分頁介面
// swagger:model api.UsersResponse
type UsersResponse struct {
	Data        []UserResponse `json:"data"`
	CurrentPage int            `json:"current_page" example:"1"`
	PerPage     int            `json:"per_page" example:"10"`
	Total       int            `json:"total" example:"15"`
	LastPage    int            `json:"last_page" example:"2"`
}
