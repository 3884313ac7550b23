package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "registrar-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, err := svc.GenerateToken("registrar-admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "registrar-admin", claims.Subject)
	assert.Equal(t, "registrar-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateToken("registrar-admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testService(time.Hour).GenerateToken("registrar-admin")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "registrar-test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	for _, tc := range []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid header", "Bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc123", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"prefix only", "Bearer ", "", true},
		{"trims surrounding space", "Bearer  abc123 ", "abc123", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, token)
		})
	}
}
