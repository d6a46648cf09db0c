package usecase

import (
	"crypto/rand"
	"math/big"
	"time"

	authdomain "articles-backend/internal/auth/domain"
	authdto "articles-backend/internal/auth/dto"
	"articles-backend/internal/auth/repository"
	"articles-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Character pool for generated passwords, kept from the legacy API contract.
const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()_+[]{}|;:,.<>?"

const generatedPasswordLength = 8

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Pseudo:   req.Pseudo,
		CityCode: req.CityCode,
		City:     req.City,
		Phone:    req.Phone,
	}

	// The email/pseudo unique indexes backstop the race between this
	// existence check and the insert.
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", err
	}

	// Same error for unknown email and wrong password so callers cannot
	// enumerate accounts.
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return u.generateToken(user.Email)
}

func (u *authUsecase) ResetPassword(email string) (string, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}

	// Unknown email: answer as if the reset happened, mutate nothing.
	if user == nil {
		return "", nil
	}

	newPassword, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return "", err
	}

	hashedPassword, err := repository.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	user.Password = hashedPassword
	if err := u.userRepo.Update(user); err != nil {
		return "", err
	}

	return newPassword, nil
}

func (u *authUsecase) CheckSession(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	return err == nil && token.Valid
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (u *authUsecase) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func generatePassword(length int) (string, error) {
	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordChars))))
		if err != nil {
			return "", err
		}
		password[i] = passwordChars[idx.Int64()]
	}
	return string(password), nil
}
