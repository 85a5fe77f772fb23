package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasklight/task-tracker-api/internal/repository"
)

func newAuthService() *AuthService {
	return NewAuthService(repository.NewMemoryUserRepository())
}

func TestAuthService_SignupLoginRoundTrip(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Signup(SignupInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	loggedIn, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_SignupValidation(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Signup(SignupInput{Email: "a@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(SignupInput{Name: "A", Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)

	// Other fields don't matter; the email is what collides
	_, err = svc.Signup(SignupInput{Name: "Impostor", Email: "alice@example.com", Password: "different1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Email: "unknown@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUser(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Signup(SignupInput{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)

	found, err := svc.GetUser(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	_, err = svc.GetUser("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
