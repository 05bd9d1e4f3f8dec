package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arnavshah/shift-board-api/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	iss := NewIssuer("secret")

	token, err := iss.CreateToken("admin")
	require.NoError(t, err)

	claims, err := iss.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewIssuer("one").CreateToken("admin")
	require.NoError(t, err)

	_, err = NewIssuer("two").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	iss := &Issuer{Secret: []byte("secret"), TTL: -time.Minute}
	token, err := iss.CreateToken("admin")
	require.NoError(t, err)

	_, err = iss.VerifyToken(token)
	assert.Error(t, err)
}

func TestEnsureAdminAndAuthenticate(t *testing.T) {
	db, err := database.InitDB(database.Options{DataPath: filepath.Join(t.TempDir(), "auth.db")})
	require.NoError(t, err)

	created, err := EnsureAdminExists(db, "admin", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdminExists(db, "other", "pw2")
	require.NoError(t, err)
	assert.False(t, created, "only bootstraps an empty table")

	user, err := Authenticate(db, "admin", "pw")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = Authenticate(db, "admin", "wrong")
	assert.Error(t, err)
	_, err = Authenticate(db, "other", "pw2")
	assert.Error(t, err)
}
