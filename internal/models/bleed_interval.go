package models

import "time"

const (
	MinBleedDays = 3
	MaxBleedDays = 10

	MinCycleDays = 21
	MaxCycleDays = 35

	// DefaultCycleLength is assumed when history holds fewer than two entries.
	DefaultCycleLength = 28
)

type BleedInterval struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"size:36;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// DurationDays is the inclusive day count of the bleed episode.
func (interval BleedInterval) DurationDays() int {
	return int(interval.EndDate.Sub(interval.StartDate).Hours()/24) + 1
}
