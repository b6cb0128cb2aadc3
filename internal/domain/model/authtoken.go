package model

import "time"

// AuthToken is the result of an OAuth2 authorization-code exchange. It is
// returned to the caller verbatim and never stored.
type AuthToken struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	Expiry       time.Time
}
