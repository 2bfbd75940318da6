package core

import "time"

// Principal is the verified identity attached to every authenticated call
type Principal struct {
	Username string
	Role     string
}

// TokenManager issues and verifies access tokens for a principal
type TokenManager interface {
	Issue(principal Principal) (token string, expiresAt time.Time, err error)
	Verify(token string) (Principal, error)
}
