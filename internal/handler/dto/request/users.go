package request

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
