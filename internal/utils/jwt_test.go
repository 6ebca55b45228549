package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWTToken("vaultshare", 42, "alice@example.com", time.Hour, "sign-key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "sign-key", "vaultshare")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestValidateJWT_WrongKeyOrIssuer(t *testing.T) {
	token, err := GenerateJWTToken("vaultshare", 42, "alice@example.com", time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", "vaultshare")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "sign-key", "someone-else")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWTToken("vaultshare", 42, "alice@example.com", -time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "sign-key", "vaultshare")
	assert.Error(t, err)
}

func TestGenerateJWT_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 42, "a@b.c", time.Hour, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", 42, "", time.Hour, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", 42, "a@b.c", 0, "k")
	assert.Error(t, err)
	_, err = GenerateJWTToken("iss", 42, "a@b.c", time.Hour, "")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)
	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
	_, err = ParseBearerToken("")
	assert.Error(t, err)
}

func TestHasherPool(t *testing.T) {
	InitHasherPool("integrity-key")

	sum1 := Hash([]byte("body"))
	sum2 := Hash([]byte("body"))
	assert.Equal(t, sum1, sum2)
	assert.True(t, ValidHash([]byte("body"), sum1))
	assert.False(t, ValidHash([]byte("other"), sum1))

	assert.Equal(t, HashString("body", "integrity-key"), HashString("body", "integrity-key"))
	assert.NotEqual(t, HashString("body", "integrity-key"), HashString("body", "other-key"))
}
