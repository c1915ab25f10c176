package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOriginalOnly(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse", "hash must not embed the plaintext")

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "correct horse battery stapl"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash carries its own random salt")
	assert.True(t, CheckPassword(first, "same-password"))
	assert.True(t, CheckPassword(second, "same-password"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, CheckPassword("", "anything"))
}

func TestRegister_Success(t *testing.T) {
	service := NewUserService(newMockRepository())

	registered, err := service.Register("a@x.com", "secret-password")
	require.NoError(t, err)

	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "a@x.com", registered.Email)
	assert.NotEqual(t, "secret-password", registered.PasswordHash)
	assert.True(t, CheckPassword(registered.PasswordHash, "secret-password"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	first, err := service.Register("a@x.com", "secret-password")
	require.NoError(t, err)

	_, err = service.Register("a@x.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// no second row was created and the first is intact
	assert.Len(t, repo.users, 1)
	assert.Equal(t, first.ID, repo.users["a@x.com"].ID)
}

func TestRegister_InvalidEmail(t *testing.T) {
	service := NewUserService(newMockRepository())

	for _, email := range []string{"", "no-at-sign", "a@", "@x.com"} {
		_, err := service.Register(email, "secret-password")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q should be rejected", email)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.Register("a@x.com", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}
