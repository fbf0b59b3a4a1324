package domain

import "time"

// Session is the verified content of a session token.
type Session struct {
	Subject   string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthResult is returned by register and login.
type AuthResult struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        *Principal `json:"user"`
}
