package model

import "time"

// Роли пользователей. Новые регистрации всегда получают RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User — учётная запись. PasswordHash пустой для OAuth-аккаунтов.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`

	PasswordHash string `gorm:"column:password_hash" json:"-"`

	Role       string `gorm:"not null;default:user" json:"role"`
	IsVerified bool   `gorm:"not null;default:false" json:"isVerified"`

	// Тег провайдера для аккаунтов, созданных через OAuth ("google" | "github").
	OAuthProvider *string `gorm:"column:oauth_provider" json:"oauthProvider,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
