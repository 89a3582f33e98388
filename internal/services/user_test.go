package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Viraj-FG/Techcentral-sub004/internal/domain"
)

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		wantErr  string
	}{
		{"success", "alice@example.com", "longenough", "Alice", ""},
		{"invalid email", "not-an-email", "longenough", "Alice", "invalid email format"},
		{"short password", "alice@example.com", "short", "Alice", "password must be at least 8 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(newFakeUserRepo(), &fakePasswordHasher{}, &fakeTokenIssuer{})
			user, err := svc.SignUp(ctx, tt.email, tt.password, tt.userName)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice", user.Name)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEmpty(t, user.ID)
		})
	}
}

func TestUserService_SignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	users.createErr = domain.ErrDuplicateEmail
	svc := NewUserService(users, &fakePasswordHasher{}, &fakeTokenIssuer{})

	_, err := svc.SignUp(ctx, "alice@example.com", "longenough", "Alice")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewUserService(users, &fakePasswordHasher{}, &fakeTokenIssuer{})

	created, err := svc.SignUp(ctx, "alice@example.com", "longenough", "Alice")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "Alice@Example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "token-"+created.ID, token)
	assert.Equal(t, created.ID, user.ID)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrongpassword")
	require.ErrorContains(t, err, "invalid credentials")

	_, _, err = svc.Login(ctx, "nobody@example.com", "longenough")
	require.ErrorContains(t, err, "invalid credentials")
}
