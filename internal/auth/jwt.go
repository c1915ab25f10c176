package auth

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidJWTToken = errors.New("JWT token is invalid")
	ErrExpiredJWTToken = errors.New("JWT token is expired")
)

const defaultAccessTokenMinutes = 30

type JWTManagerInterface interface {
	GenerateAccessJWT(subject string) (string, error)
	ValidateAccessToken(tokenString string) (string, error)
}

// JWTManager issues and verifies signed, self-contained access tokens. The
// signing key is process-wide state, loaded once at startup and never
// rotated at runtime.
type JWTManager struct {
	secret        string
	tokenDuration time.Duration
}

func NewJWTManager() JWTManagerInterface {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET is not set, refusing to start with an insecure signing key")
	}

	minutes := defaultAccessTokenMinutes
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Fatalf("ACCESS_TOKEN_EXPIRE_MINUTES is not a positive integer: %q", raw)
		}
		minutes = parsed
	}

	return &JWTManager{
		secret:        jwtSecret,
		tokenDuration: time.Duration(minutes) * time.Minute,
	}
}

// GenerateAccessJWT produces an HS256 signed token carrying the subject and
// an expiry of now plus the configured token duration.
func (j *JWTManager) GenerateAccessJWT(subject string) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(j.tokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// ValidateAccessToken checks signature integrity and expiry and returns the
// subject claim. Any bit flip in payload or signature invalidates the token.
func (j *JWTManager) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidJWTToken
		}
		return []byte(j.secret), nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&(jwt.ValidationErrorExpired) != 0 {
				return "", ErrExpiredJWTToken
			}
		}
		return "", ErrInvalidJWTToken
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidJWTToken
	}

	return claims.Subject, nil
}
