package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	minEmailLength = 3
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = fmt.Errorf("email address is not valid")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPasswordRequired   = errors.New("password must not be empty")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service interface {
	Register(email, password string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// HashPassword derives a bcrypt hash with a per-call random salt. The
// plaintext is never stored and never logged.
func HashPassword(password string) (string, error) {
	var passwordBytes = []byte(password)

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword(passwordBytes, bcryptCost)

	return string(hashedPasswordBytes), err
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A malformed hash never panics, it simply fails the comparison.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashedPassword), []byte(password))
	return err == nil
}

func validateEmailAddress(email string) error {
	err := checkmail.ValidateFormat(email)
	if err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(email, password string) (*User, error) {
	err := validateEmailAddress(email)
	if err != nil {
		return nil, err
	}

	if password == "" {
		return nil, ErrPasswordRequired
	}

	existingUser, err := s.repo.getUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.repo.createUser(user)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			// lost the race against a concurrent registration with the same email
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrInternalError
	}

	return user, nil
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
