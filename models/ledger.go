package models

import "time"

// LedgerBucket is the per-(user, calendar day) aggregate kept in sync
// with entry mutations. It is a derived cache over entries: aggregates
// only, never a source of truth for individual events.
type LedgerBucket struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"uniqueIndex:idx_ledger_user_date;not null"`
	Date            time.Time `gorm:"uniqueIndex:idx_ledger_user_date;not null"`
	TotalCalorie    int       `gorm:"not null"`
	NumOfEntries    int       `gorm:"not null"`
	TotalPriceCents int64     `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (b *LedgerBucket) TotalPrice() float64 { return float64(b.TotalPriceCents) / 100 }
