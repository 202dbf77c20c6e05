package model

// User is an account from the users file. Password holds a bcrypt hash.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenClaim struct {
	UserID   int
	Username string
	Role     string
}
