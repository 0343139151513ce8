package model

// User is an account holder: a client, doctor, manager or admin depending
// on its role.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Fio          string `db:"fio" json:"userFio"`
	Phone        string `db:"phone" json:"userPhone"`
	Email        string `db:"email" json:"userEmail"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         Role   `db:"role" json:"userRole"`
}

// RegisterRequest carries the registration payload. Structural checks are
// binding tags; the domain-specific shapes (full name, Russian phone) are
// verified in the auth service.
type RegisterRequest struct {
	Fio      string `json:"userFio" binding:"required"`
	Phone    string `json:"userPhone" binding:"required"`
	Email    string `json:"userEmail" binding:"required"`
	Password string `json:"userPassword" binding:"required"`
	Role     string `json:"userRole"`
}

// LoginRequest carries credentials for login.
type LoginRequest struct {
	Email    string `json:"userEmail" binding:"required"`
	Password string `json:"userPassword" binding:"required"`
}

// TokenResponse wraps an issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
