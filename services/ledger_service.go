package services

import (
	"errors"
	"time"

	"github.com/aditya-yaduvanshi/calorie-tracker/models"

	"gorm.io/gorm"
)

// Delta is a signed adjustment applied to one bucket for one logical
// entry mutation. Callers compute each delta exactly once; the ledger
// does no deduplication.
type Delta struct {
	Calorie    int
	PriceCents int64
	Entries    int
}

type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService { return &LedgerService{db: db} }

// DayOf normalizes a timestamp to its bucket key: midnight UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ApplyDelta locates the (user, day) bucket, creating it zero-seeded if
// absent, and applies the signed delta. Returns the post-delta bucket.
func (s *LedgerService) ApplyDelta(userID uint, date time.Time, d Delta) (*models.LedgerBucket, error) {
	day := DayOf(date)

	var b models.LedgerBucket
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		b = models.LedgerBucket{UserID: userID, Date: day}
		if err := s.db.Create(&b).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	b.TotalCalorie += d.Calorie
	b.NumOfEntries += d.Entries
	b.TotalPriceCents += d.PriceCents
	if err := s.db.Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBucket reports a missing bucket as all-zero, not as an error.
func (s *LedgerService) GetBucket(userID uint, date time.Time) (models.LedgerBucket, error) {
	day := DayOf(date)

	var b models.LedgerBucket
	err := s.db.Where("user_id = ? AND date = ?", userID, day).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LedgerBucket{UserID: userID, Date: day}, nil
	}
	if err != nil {
		return models.LedgerBucket{}, err
	}
	return b, nil
}

func (s *LedgerService) TodayBucket(userID uint) (models.LedgerBucket, error) {
	return s.GetBucket(userID, time.Now())
}

// Bootstrap seeds an empty bucket for a freshly created user so their
// ledger exists from day one.
func (s *LedgerService) Bootstrap(userID uint) error {
	_, err := s.ApplyDelta(userID, time.Now(), Delta{})
	return err
}

// AverageCaloriesPerDay guards the zero-entry day: a bucket whose
// entries were all deleted averages to 0, never divides by zero.
func AverageCaloriesPerDay(b models.LedgerBucket) float64 {
	if b.NumOfEntries == 0 {
		return 0
	}
	return float64(b.TotalCalorie) / float64(b.NumOfEntries)
}
