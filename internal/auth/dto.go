package auth

// LoginRequest carries the credentials for the token endpoint. The JSON form
// uses email; the form-encoded variant maps username onto the same field.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
