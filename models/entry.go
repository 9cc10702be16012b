package models

import (
	"time"

	"gorm.io/gorm"
)

// Entry is one consumption event. Price is stored in cents to avoid
// float drift when buckets accumulate many entries.
type Entry struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	User       User      `gorm:"foreignKey:UserID"`
	Name       string    `gorm:"size:100;not null"`
	Calorie    int       `gorm:"not null"`
	PriceCents int64     `gorm:"not null"`
	Date       time.Time `gorm:"index;not null"`  // calendar day, midnight UTC
	Time       string    `gorm:"size:5;not null"` // HH:MM
}

func (e *Entry) Price() float64 { return float64(e.PriceCents) / 100 }
