package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/app/models"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWT(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", Expiration: exp, Issuer: "contribtrack-test"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWT(time.Hour)
	deptID := uuid.New()
	user := &models.User{ID: uuid.New(), Role: models.RoleHOD, DepartmentID: &deptID}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "HOD", claims.Role)
	require.NotNil(t, claims.DepartmentID)
	assert.Equal(t, deptID.String(), *claims.DepartmentID)
	assert.Equal(t, "contribtrack-test", claims.Issuer)
}

func TestGenerateToken_AdminHasNoDepartment(t *testing.T) {
	svc := newTestJWT(time.Hour)
	token, _, err := svc.GenerateToken(&models.User{ID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.DepartmentID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWT(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestJWT(time.Hour).GenerateToken(&models.User{ID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", Expiration: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{UserID: uuid.NewString(), Role: "Admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWT(time.Hour).ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
		{"abc.def.ghi", "", true},
		{"Bearer ", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidFormat, tt.header)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}

func TestHashPassword_FallsBackOnInvalidCost(t *testing.T) {
	hash, err := HashPassword("secret1", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes), bcrypt.MinCost)
	assert.NoError(t, err)
}
