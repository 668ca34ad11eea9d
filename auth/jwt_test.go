package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, TokenValidity)
	require.NoError(t, err)

	subject, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenValidityWindow(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return issued }
	defer func() { timeNow = time.Now }()

	token, err := GenerateToken("alice", testSecret, TokenValidity)
	require.NoError(t, err)

	// still valid one minute before the 30 minute boundary
	timeNow = func() time.Time { return issued.Add(29 * time.Minute) }
	subject, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	// expired one minute after it
	timeNow = func() time.Time { return issued.Add(31 * time.Minute) }
	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, TokenValidity)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(unsigned, testSecret)
	assert.Error(t, err)
}
