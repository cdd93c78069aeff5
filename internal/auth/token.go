package auth

import (
	"os"
	"time"

	"hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// issueAccessToken signs the identity claims the auth middleware reads back:
// sub, email, role, and organization_id (empty for platform operators).
func issueAccessToken(u *user.User, employeeID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}
	if u.OrganizationID != nil {
		claims["organization_id"] = u.OrganizationID.String()
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// issueRefreshToken signs an opaque-ish JWT carrying only the subject and a
// rotation id; possession alone is not enough, the token must also still be
// present in refresh_tokens.
func issueRefreshToken(u *user.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(refreshTokenTTL)
	claims := jwt.MapClaims{
		"sub": u.ID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_REFRESH_SECRET")))
	return signed, expiresAt, err
}

func parseRefreshToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_REFRESH_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}
