// internal/model/profile.go
package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Profile はアクター (認証済みID) に紐づくロール情報です
type Profile struct {
	ActorID     string    `gorm:"type:varchar(255);primaryKey" json:"actor_id"`
	Role        Role      `gorm:"type:varchar(20);not null;default:student" json:"role"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ContextKey string

const (
	ActorIDKey ContextKey = "actorID"
)
