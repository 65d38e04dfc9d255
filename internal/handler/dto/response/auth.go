package response

type SessionResponse struct {
	Email string `json:"email"`
}
