package dto

// AuthRequest describes login/password payload. The login is an e-mail address.
type AuthRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
