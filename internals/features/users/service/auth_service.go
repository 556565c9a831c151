// file: internals/features/users/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/artiechokes/youth-ministry-admin-suite/internals/configs"
	userDTO "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/dto"
	userModel "github.com/artiechokes/youth-ministry-admin-suite/internals/features/users/model"
)

func nowUTC() time.Time { return time.Now().UTC() }

// Login authenticates by username or email and issues a token pair.
func Login(db *gorm.DB, identifier, password string) (userModel.UserModel, userDTO.TokenPairResponse, error) {
	identifier = strings.TrimSpace(identifier)

	var usr userModel.UserModel
	err := db.
		Where("(lower(user_username) = lower(?) OR lower(user_email) = lower(?)) AND user_archived_at IS NULL",
			identifier, identifier).
		First(&usr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Println("[ERROR] login lookup:", err)
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.UserPasswordHash), []byte(password)) != nil {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	pair, err := issuePair(db, usr)
	return usr, pair, err
}

// GoogleLogin verifies a Google ID token and signs in the matching staff
// account. Accounts are provisioned by staff_manage, never auto-created.
func GoogleLogin(db *gorm.DB, idToken string) (userModel.UserModel, userDTO.TokenPairResponse, error) {
	var usr userModel.UserModel

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	err = db.
		Where("lower(user_email) = lower(?) AND user_archived_at IS NULL", claimSet.Email).
		First(&usr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "No staff account for this Google email")
		}
		log.Println("[ERROR] google login lookup:", err)
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	pair, err := issuePair(db, usr)
	return usr, pair, err
}

// Refresh rotates the refresh token and returns a fresh pair.
func Refresh(db *gorm.DB, refreshToken string) (userModel.UserModel, userDTO.TokenPairResponse, error) {
	var usr userModel.UserModel

	userID, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return usr, userDTO.TokenPairResponse{}, err
	}

	var stored userModel.RefreshTokenModel
	if err := db.
		Where("refresh_token_token = ? AND refresh_token_user_id = ? AND refresh_token_expires_at > ?",
			refreshToken, userID, nowUTC()).
		First(&stored).Error; err != nil {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	if err := db.Where("user_id = ? AND user_archived_at IS NULL", userID).First(&usr).Error; err != nil {
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	// single use: drop the old row before issuing
	if err := db.Delete(&stored).Error; err != nil {
		log.Println("[ERROR] refresh rotation:", err)
		return usr, userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	pair, err := issuePair(db, usr)
	return usr, pair, err
}

// Logout blacklists the presented access token until its natural expiry.
func Logout(db *gorm.DB, accessToken string) error {
	expiredAt := nowUTC().Add(accessTTLDefault)
	// best effort: read exp off the token so the blacklist row does not
	// outlive the token
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	entry := userModel.TokenBlacklistModel{
		TokenBlacklistToken:     accessToken,
		TokenBlacklistExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] blacklist insert:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log out")
	}
	return nil
}

func issuePair(db *gorm.DB, usr userModel.UserModel) (userDTO.TokenPairResponse, error) {
	now := nowUTC()

	access, expiresIn, err := IssueAccessToken(usr, now)
	if err != nil {
		return userDTO.TokenPairResponse{}, err
	}
	refresh, refreshExp, err := IssueRefreshToken(usr.UserID, now)
	if err != nil {
		return userDTO.TokenPairResponse{}, err
	}

	row := userModel.RefreshTokenModel{
		RefreshTokenUserID:    usr.UserID,
		RefreshTokenToken:     refresh,
		RefreshTokenExpiresAt: refreshExp,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Println("[ERROR] refresh insert:", err)
		return userDTO.TokenPairResponse{}, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	return userDTO.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
	}, nil
}

// HashPassword wraps bcrypt with the default cost used across the app.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	return string(hash), nil
}
