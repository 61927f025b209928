package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	tok, err := svc.GenerateToken(42, "alice")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("secret", -1*time.Second)

	tok, err := svc.GenerateToken(1, "u1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTService("right-secret", time.Hour)
	verifier := NewJWTService("wrong-secret", time.Hour)

	tok, err := issuer.GenerateToken(2, "u2")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("k", time.Hour)

	_, err := svc.ValidateToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
