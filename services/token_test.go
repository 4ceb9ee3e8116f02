package services

import (
	"testing"

	"stayhub/constants"

	"github.com/stretchr/testify/assert"
)

func setTokenSecrets(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-access-secret")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "test-refresh-secret")
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	setTokenSecrets(t)

	userInfo := UserInfo{UserId: 42, Role: constants.RoleAdmin}

	token, err := GenerateToken(userInfo, 60, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token, true)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserInfo.UserId)
	assert.Equal(t, constants.RoleAdmin, claims.UserInfo.Role)
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	setTokenSecrets(t)

	token, err := GenerateToken(UserInfo{UserId: 7}, 60, true)
	assert.NoError(t, err)

	_, err = ParseToken(token, false)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	setTokenSecrets(t)

	token, err := GenerateToken(UserInfo{UserId: 7}, -1, true)
	assert.NoError(t, err)

	_, err = ParseToken(token, true)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setTokenSecrets(t)

	_, err := ParseToken("not.a.token", true)
	assert.Error(t, err)
}

func TestGetUserIDFromToken(t *testing.T) {
	setTokenSecrets(t)

	token, err := GenerateToken(UserInfo{UserId: 9, Role: constants.RoleGuest}, 60, true)
	assert.NoError(t, err)

	userID, role, err := GetUserIDFromToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), userID)
	assert.Equal(t, constants.RoleGuest, role)
}
