package models

import "time"

// Session is a server-side login session. The token is the opaque value
// carried by the session_token cookie; a row is valid only while
// ExpiresAt is in the future.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;size:255;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
