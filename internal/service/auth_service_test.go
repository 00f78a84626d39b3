package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeCoachRepo(), testJWTSecret, time.Hour)
	ctx := context.Background()

	coach, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", coach.Email)
	assert.NotEqual(t, "hunter22", coach.PasswordHash)

	token, logged, err := svc.Login(ctx, "sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, coach.ID, logged.ID)

	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, coach.ID.Hex(), claims["uid"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeCoachRepo(), testJWTSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Other", "sam@example.com", "different")
	assert.ErrorIs(t, err, ErrCoachAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeCoachRepo(), testJWTSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
