package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

// AuthService handles registration, login and token issuance.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser hashes the password, persists the user and issues a token.
// The returned user never carries the password hash.
func (s *AuthService) RegisterUser(in RegisterInput) (*models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, "", ErrInternal
	}

	user := &models.User{
		Email:    in.Email,
		Password: string(hashedPassword),
		FullName: in.FullName,
		IsActive: true,
		Roles:    []string{models.RoleUser},
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("email %q already registered: %w", in.Email, ErrConflict)
		}
		log.Printf("Failed to register user: %v", err)
		return nil, "", ErrInternal
	}

	user.Password = "" // never returned across the service boundary
	token, err := s.signToken(user.ID)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return nil, "", ErrInternal
	}
	return user, token, nil
}

// LoginUser authenticates by email and password and issues a token. The
// email and password failure branches are kept distinct internally but
// both wrap ErrInvalidCredentials, so handlers surface a single generic
// message.
func (s *AuthService) LoginUser(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", fmt.Errorf("not valid credentials (email): %w", ErrInvalidCredentials)
		}
		log.Printf("Failed to look up user %s: %v", email, err)
		return nil, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("not valid credentials (password): %w", ErrInvalidCredentials)
	}

	user.Password = ""
	token, err := s.signToken(user.ID)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return nil, "", ErrInternal
	}
	return user, token, nil
}

// CheckAuthStatus re-issues a fresh token for an already-authenticated
// user, as resolved by the HTTP boundary from a verified token.
func (s *AuthService) CheckAuthStatus(user *models.User) (string, error) {
	token, err := s.signToken(user.ID)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return "", ErrInternal
	}
	return token, nil
}

// ValidateToken parses and verifies a token, returning the user ID it was
// issued for.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid token: missing id claim")
	}
	return id, nil
}

func (s *AuthService) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.tokenDurat).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
