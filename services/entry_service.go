package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"gorm.io/gorm"
)

const (
	maxCalorie    = 5000
	maxPriceCents = int64(9999999999) // 99,999,999.99
)

// EntryService orchestrates entry mutations: every create/update/delete
// persists the entry and applies the matching ledger delta to the
// owner's day bucket.
type EntryService struct {
	db     *gorm.DB
	ledger *LedgerService
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db, ledger: NewLedgerService(db)}
}

type CreateEntryInput struct {
	Name    string
	Calorie int
	Price   float64
	Date    string
	Time    string
	User    uint // admin-specified owner; ignored for general users
}

type UpdateEntryInput struct {
	Name    *string
	Calorie *int
	Price   *float64
	Date    *string
	Time    *string
	User    uint // admin-only reassignment target
}

type ListEntriesInput struct {
	FromDate string
	ToDate   string
	OnDate   string
}

func PriceToCents(price float64) int64 { return int64(math.Round(price * 100)) }

// Create validates, persists the entry under the resolved owner and
// applies the positive delta to the owner's bucket for the entry date.
// Returns the entry plus the owner's post-delta bucket for that date.
func (s *EntryService) Create(actor *utils.TokenPayload, in CreateEntryInput) (*models.Entry, *models.LedgerBucket, error) {
	if !utils.IsFoodName(in.Name) {
		return nil, nil, validationErr("Food name should be an alpha numeric value.")
	}
	if in.Calorie < 0 || in.Calorie > maxCalorie {
		return nil, nil, validationErr("Calorie should be between 0 and 5000.")
	}
	cents := PriceToCents(in.Price)
	if cents < 0 || cents > maxPriceCents {
		return nil, nil, validationErr("Price should be a positive number or zero.")
	}
	if !utils.IsValidDateTime(in.Date, in.Time) {
		return nil, nil, validationErr("Date and Time should be in valid format 'YYYY-MM-DD' & 'HH:MM' and should not exceed current date and time.")
	}

	ownerID := actor.ID
	if actor.Role == models.RoleAdmin {
		if in.User == 0 {
			return nil, nil, validationErr("All fields are required and cannot be empty.")
		}
		var count int64
		if err := s.db.Model(&models.User{}).Where("id = ?", in.User).Count(&count).Error; err != nil {
			return nil, nil, err
		}
		if count == 0 {
			return nil, nil, ErrInvalidOwner
		}
		ownerID = in.User
	}

	date, _ := utils.ParseDate(in.Date)
	entry := models.Entry{
		UserID:     ownerID,
		Name:       in.Name,
		Calorie:    in.Calorie,
		PriceCents: cents,
		Date:       date,
		Time:       in.Time,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, nil, err
	}

	bucket, err := s.ledger.ApplyDelta(ownerID, date, Delta{
		Calorie:    entry.Calorie,
		PriceCents: entry.PriceCents,
		Entries:    1,
	})
	if err != nil {
		return nil, nil, err
	}
	s.checkLimits(ownerID, bucket, Delta{Calorie: entry.Calorie, PriceCents: entry.PriceCents})

	return &entry, bucket, nil
}

// List returns entries visible to the actor, newest first, optionally
// filtered by date range or an exact day.
func (s *EntryService) List(actor *utils.TokenPayload, in ListEntriesInput) ([]models.Entry, error) {
	q := s.db.Preload("User").Order("updated_at DESC")
	if actor.Role != models.RoleAdmin {
		q = q.Where("user_id = ?", actor.ID)
	}
	if in.FromDate != "" {
		from, ok := utils.ParseDate(in.FromDate)
		if !ok {
			return nil, validationErr("Invalid fromDate.")
		}
		q = q.Where("date >= ?", from)
	}
	if in.ToDate != "" {
		to, ok := utils.ParseDate(in.ToDate)
		if !ok {
			return nil, validationErr("Invalid toDate.")
		}
		q = q.Where("date <= ?", to)
	}
	if in.OnDate != "" {
		on, ok := utils.ParseDate(in.OnDate)
		if !ok {
			return nil, validationErr("Invalid onDate.")
		}
		q = q.Where("date = ?", on)
	}

	var entries []models.Entry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update applies field patches and corrects both the pre-image and
// post-image buckets. The negative delta carries the pre-edit values to
// the old owner's old-date bucket; the positive delta carries the
// post-edit values to the new owner's new-date bucket. Both deltas move
// the entry count, so reassignment keeps counts consistent.
//
// A date or time patch that would place the entry in the future is
// dropped silently rather than failing the whole request.
//
// The returned bucket is the actor's own today bucket; nil for admin
// callers, who have no single relevant "today" when editing others.
func (s *EntryService) Update(actor *utils.TokenPayload, entryID uint, in UpdateEntryInput) (*models.Entry, *models.LedgerBucket, error) {
	if in.Name == nil && in.Calorie == nil && in.Price == nil && in.Date == nil && in.Time == nil && in.User == 0 {
		return nil, nil, validationErr("Body cannot be empty.")
	}

	entry, err := s.findScoped(actor, entryID)
	if err != nil {
		return nil, nil, err
	}

	// pre-image, for the negative delta
	oldOwner := entry.UserID
	oldDate := entry.Date
	oldCalorie := entry.Calorie
	oldCents := entry.PriceCents

	if in.Name != nil {
		if !utils.IsFoodName(*in.Name) {
			return nil, nil, validationErr("Food name should be an alpha numeric value.")
		}
		entry.Name = *in.Name
	}
	if in.Calorie != nil {
		if *in.Calorie < 0 || *in.Calorie > maxCalorie {
			return nil, nil, validationErr("Calorie should be between 0 and 5000.")
		}
		entry.Calorie = *in.Calorie
	}
	if in.Price != nil {
		cents := PriceToCents(*in.Price)
		if cents < 0 || cents > maxPriceCents {
			return nil, nil, validationErr("Price should be a positive number or zero.")
		}
		entry.PriceCents = cents
	}
	if in.Time != nil {
		if utils.IsValidDateTime(entry.Date.Format("2006-01-02"), *in.Time) {
			entry.Time = *in.Time
		}
	}
	if in.Date != nil {
		if utils.IsValidDateTime(*in.Date, entry.Time) {
			d, _ := utils.ParseDate(*in.Date)
			entry.Date = d
		}
	}
	if in.User != 0 && actor.Role == models.RoleAdmin {
		var count int64
		if err := s.db.Model(&models.User{}).Where("id = ?", in.User).Count(&count).Error; err != nil {
			return nil, nil, err
		}
		if count == 0 {
			return nil, nil, ErrInvalidOwner
		}
		entry.UserID = in.User
	}

	if _, err := s.ledger.ApplyDelta(oldOwner, oldDate, Delta{
		Calorie:    -oldCalorie,
		PriceCents: -oldCents,
		Entries:    -1,
	}); err != nil {
		return nil, nil, err
	}
	bucket, err := s.ledger.ApplyDelta(entry.UserID, entry.Date, Delta{
		Calorie:    entry.Calorie,
		PriceCents: entry.PriceCents,
		Entries:    1,
	})
	if err != nil {
		return nil, nil, err
	}
	s.checkLimits(entry.UserID, bucket, Delta{Calorie: entry.Calorie, PriceCents: entry.PriceCents})

	if err := s.db.Save(entry).Error; err != nil {
		return nil, nil, err
	}

	if actor.Role == models.RoleAdmin {
		return entry, nil, nil
	}
	today, err := s.ledger.TodayBucket(actor.ID)
	if err != nil {
		return nil, nil, err
	}
	return entry, &today, nil
}

// Delete removes the entry under the actor's scope and subtracts it
// from the owner's original-date bucket.
func (s *EntryService) Delete(actor *utils.TokenPayload, entryID uint) error {
	entry, err := s.findScoped(actor, entryID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return err
	}
	_, err = s.ledger.ApplyDelta(entry.UserID, entry.Date, Delta{
		Calorie:    -entry.Calorie,
		PriceCents: -entry.PriceCents,
		Entries:    -1,
	})
	return err
}

func (s *EntryService) TodayBucket(userID uint) (models.LedgerBucket, error) {
	return s.ledger.TodayBucket(userID)
}

func (s *EntryService) findScoped(actor *utils.TokenPayload, entryID uint) (*models.Entry, error) {
	q := s.db.Where("id = ?", entryID)
	if actor.Role != models.RoleAdmin {
		q = q.Where("user_id = ?", actor.ID)
	}
	var entry models.Entry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}
	return &entry, nil
}

// checkLimits emits an alert when this delta pushed the owner's bucket
// across a daily threshold. Only the crossing mutation alerts, not
// every one above the line.
func (s *EntryService) checkLimits(userID uint, bucket *models.LedgerBucket, applied Delta) {
	var limit models.DailyLimit
	err := s.db.Where("user_id = ?", userID).First(&limit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		limit = models.DailyLimit{
			UserID:          userID,
			CalorieLimit:    models.DefaultCalorieLimit,
			SpendLimitCents: models.DefaultSpendLimitCents,
		}
	} else if err != nil {
		return
	}

	date := bucket.Date.Format("2006-01-02")
	if bucket.TotalCalorie > limit.CalorieLimit && bucket.TotalCalorie-applied.Calorie <= limit.CalorieLimit {
		EmitAlert(userID, models.AlertCalorieLimit, fmt.Sprintf(
			"You have crossed your daily limit of %d calories on %s.", limit.CalorieLimit, date))
	}
	if bucket.TotalPriceCents > limit.SpendLimitCents && bucket.TotalPriceCents-applied.PriceCents <= limit.SpendLimitCents {
		EmitAlert(userID, models.AlertSpendLimit, fmt.Sprintf(
			"You have crossed your daily spending limit of %.2f on %s.", float64(limit.SpendLimitCents)/100, date))
	}
}
