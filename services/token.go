package services

import (
	"stayhub/config"
	"stayhub/errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func accessSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

func refreshSecret() []byte {
	return []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))
}

// GenerateToken signs a token carrying the user's id and role. Access and
// refresh tokens use separate secrets.
func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if isAccessToken {
		return token.SignedString(accessSecret())
	}
	return token.SignedString(refreshSecret())
}

// ParseToken verifies a token's signature and expiry and returns its claims.
func ParseToken(tokenString string, isAccessToken bool) (*Claims, error) {
	secret := accessSecret()
	if !isAccessToken {
		secret = refreshSecret()
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	return claims, nil
}

// GetUserIDFromToken extracts the user id and role from an access token.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims, err := ParseToken(tokenString, true)
	if err != nil {
		return 0, 0, err
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
