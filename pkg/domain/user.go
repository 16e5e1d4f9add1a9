package domain

// User is the account returned by the login endpoint.
// The server may send more fields; only these are read.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Author is the embedded creator of a comment.
type Author struct {
	Username string `json:"username"`
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
