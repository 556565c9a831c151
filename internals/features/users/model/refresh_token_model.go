// file: internals/features/users/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:refresh_token_id" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID `gorm:"type:uuid;not null;index;column:refresh_token_user_id"                  json:"refresh_token_user_id"`
	RefreshTokenToken     string    `gorm:"type:text;not null;uniqueIndex;column:refresh_token_token"              json:"refresh_token_token"`
	RefreshTokenExpiresAt time.Time `gorm:"type:timestamptz;not null;column:refresh_token_expires_at"              json:"refresh_token_expires_at"`
	RefreshTokenCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:refresh_token_created_at" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
