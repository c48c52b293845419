package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	GoogleID      string    `json:"googleId" gorm:"column:google_id;type:varchar(255);uniqueIndex;not null"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'google'"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:true"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// GoogleUserInfo is the payload returned by Google's userinfo endpoint.
// Google has shipped both "sub" and "id", and both "email_verified" and
// "verified_email", depending on API version, so we accept all of them.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
