package auth

import (
	"testing"
	"time"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	issuer := NewIssuer("test-jwt-secret-key-32-characters", time.Hour, 24*time.Hour)

	user := &models.User{ID: 42, Email: "test@example.com", IsAdmin: true}
	pair, err := issuer.IssueFor(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	ident, err := issuer.ParseAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), ident.UserID)
	assert.True(t, ident.IsAdmin)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	issuer := NewIssuer("test-jwt-secret-key-32-characters", time.Hour, 24*time.Hour)

	pair, err := issuer.IssueFor(&models.User{ID: 7})
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.Refresh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh token")
}

func TestParseAccessRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-jwt-secret-key-32-characters", -time.Minute, 24*time.Hour)

	pair, err := issuer.IssueFor(&models.User{ID: 7})
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.Access)
	assert.Error(t, err)
}

func TestParseAccessRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-jwt-secret-key-32-characters", time.Hour, 24*time.Hour)
	other := NewIssuer("a-completely-different-secret-key", time.Hour, 24*time.Hour)

	pair, err := issuer.IssueFor(&models.User{ID: 7})
	require.NoError(t, err)

	_, err = other.ParseAccess(pair.Access)
	assert.Error(t, err)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-jwt-secret-key-32-characters", time.Hour, 24*time.Hour)

	_, err := issuer.ParseAccess("not-a-jwt")
	assert.Error(t, err)
}
