package usecase

import (
	"errors"

	authdomain "articles-backend/internal/auth/domain"
	authdto "articles-backend/internal/auth/dto"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	// Signup registers a new account and returns it with the password hash
	// already stripped from serialization by the domain model.
	Signup(req *authdto.SignupRequest) (*authdomain.User, error)

	// Login returns a signed bearer token on success.
	Login(req *authdto.LoginRequest) (string, error)

	// ResetPassword replaces the stored hash with one derived from a fresh
	// random password and returns that password in plaintext. An unknown
	// email yields ("", nil) so callers cannot probe for accounts.
	ResetPassword(email string) (string, error)

	// CheckSession reports whether the token carries a valid, unexpired
	// signature. All failure modes collapse to false.
	CheckSession(token string) bool

	// ValidateToken resolves a token to its user. Returns ErrInvalidToken
	// for any signature or expiry problem, ErrUserNotFound when the claimed
	// account no longer exists.
	ValidateToken(token string) (*authdomain.User, error)
}
