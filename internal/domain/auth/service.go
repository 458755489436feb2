package auth

import "context"

// Service gates dashboard access behind the single configured
// credential pair. The issued token is the session flag; logout
// revokes it.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
}
