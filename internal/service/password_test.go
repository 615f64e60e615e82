package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret123"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "password123"))
	require.Error(t, AuthenticateUser(context.Background(), u, "wrongpassword"))
}
