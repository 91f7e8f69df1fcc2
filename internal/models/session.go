package models

import "time"

type Session struct {
	ID         string    `gorm:"primaryKey;size:36"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null;index"`
}
