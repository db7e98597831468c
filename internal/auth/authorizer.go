package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned by an Authorizer when a token is missing,
// expired or invalid.
var ErrUnauthenticated = errors.New("unauthenticated")

// Principal identifies the caller of a mutating request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Authorizer resolves a bearer token to a principal. The session and
// Firebase gates both implement it; mutating endpoints only depend on this
// contract.
type Authorizer interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
