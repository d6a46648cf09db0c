package repository

import (
	authdomain "articles-backend/internal/auth/domain"
)

// UserRepository abstracts persistence for user accounts.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
