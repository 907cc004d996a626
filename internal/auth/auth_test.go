package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		role   Role
		method string
		want   error
	}{
		{Anonymous, http.MethodGet, domain.ErrUnauthenticated},
		{Anonymous, http.MethodPost, domain.ErrUnauthenticated},
		{Authenticated, http.MethodGet, nil},
		{Authenticated, http.MethodHead, nil},
		{Authenticated, http.MethodPost, domain.ErrForbidden},
		{Authenticated, http.MethodPut, domain.ErrForbidden},
		{Authenticated, http.MethodPatch, domain.ErrForbidden},
		{Authenticated, http.MethodDelete, domain.ErrForbidden},
		{Staff, http.MethodGet, nil},
		{Staff, http.MethodPost, nil},
		{Staff, http.MethodDelete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+" "+tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.role, tt.method))
		})
	}
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, Anonymous, RoleOf(nil))
	assert.Equal(t, Authenticated, RoleOf(&Actor{UserID: 1}))
	assert.Equal(t, Staff, RoleOf(&Actor{UserID: 1, IsStaff: true}))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, exp, err := m.Issue(&domain.User{ID: 42, IsStaff: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	actor, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Actor{UserID: 42, IsStaff: true}, actor)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Issue(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = expired.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFrom(context.Background())
	assert.False(t, ok)

	actor, ok := ActorFrom(WithActor(context.Background(), Actor{UserID: 7}))
	assert.True(t, ok)
	assert.Equal(t, int64(7), actor.UserID)
}
