package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/sgorski00/finance-tracker/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Login verifies the credentials and issues an access token with the user's
// email as subject. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Printf("error when getting user from database: %v", err)
		return "", ErrInternalError
	}

	if !user.CheckPassword(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessJWT(existingUser.Email)
	if err != nil {
		log.Printf("error when generating access token: %v", err)
		return "", ErrInternalError
	}

	return accessToken, nil
}
