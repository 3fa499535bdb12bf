package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errors.New("invalid credentials")

// AdminAuthService authenticates the school admin against env-configured
// credentials and issues short-lived JWTs for the admin endpoints.
type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct {
	adminEmail   string
	passwordHash string
	jwtSecret    string
}

func NewAdminAuthService(adminEmail, passwordHash, jwtSecret string) AdminAuthService {
	return &adminAuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	if s.adminEmail == "" || s.passwordHash == "" {
		return "", errors.New("admin credentials not configured")
	}
	if email != s.adminEmail {
		return "", errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", errInvalidCredentials
	}

	if s.jwtSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 1).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
