package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleUser     UserRole = "user"
	RoleLapangan UserRole = "lapangan"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	Email        string   `gorm:"size:100"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:user"`
	IsActive     bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}
