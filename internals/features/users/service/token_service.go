// file: internals/features/users/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/configs"
	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func signToken(secret string, claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}

// IssueAccessToken builds the short-lived session token carried on every
// request. Role rides along for the admin bypass; permissions do not —
// the guard reloads them from the DB so revocations bite immediately.
func IssueAccessToken(usr userModel.UserModel, now time.Time) (string, int64, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", 0, err
	}
	exp := now.Add(accessTTLDefault)
	signed, err := signToken(secret, jwt.MapClaims{
		"sub":       usr.UserID.String(),
		"user_id":   usr.UserID.String(),
		"user_name": usr.UserUsername,
		"role":      usr.UserRole,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	})
	if err != nil {
		return "", 0, err
	}
	return signed, int64(accessTTLDefault.Seconds()), nil
}

func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, time.Time, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	exp := now.Add(refreshTTLDefault)
	signed, err := signToken(secret, jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseRefreshToken verifies signature and expiry and returns the subject.
func ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}
	return id, nil
}
