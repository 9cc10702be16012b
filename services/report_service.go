package services

import (
	"time"

	"github.com/aditya-yaduvanshi/calorie-tracker/models"

	"gorm.io/gorm"
)

// ReportService is a read-only consumer of the ledger, producing the
// admin overview: weekly entry counts and per-user daily calorie
// averages. Admin accounts are excluded from every report.
type ReportService struct {
	db     *gorm.DB
	ledger *LedgerService
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, ledger: NewLedgerService(db)}
}

type UserRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DailyAverage struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

type UserDailyAverages struct {
	User           UserRef        `json:"user"`
	CaloriesPerDay []DailyAverage `json:"caloriesPerDay"`
}

type WeeklyReport struct {
	ThisWeekEntries              int64               `json:"thisWeekEntries"`
	LastWeekEntries              int64               `json:"lastWeekEntries"`
	AverageCaloriesPerDayPerUser []UserDailyAverages `json:"averageCaloriesPerDayPerUser"`
}

// Weekly partitions non-admin entries into [-7d, now) and [-14d, -7d)
// windows and computes each non-admin user's average calories per entry
// for each of the last 7 calendar days.
func (s *ReportService) Weekly() (*WeeklyReport, error) {
	now := time.Now().UTC()
	today := DayOf(now)
	thisWeekFirst := today.AddDate(0, 0, -7)
	lastWeekFirst := today.AddDate(0, 0, -14)

	report := &WeeklyReport{AverageCaloriesPerDayPerUser: []UserDailyAverages{}}

	base := s.db.Model(&models.Entry{}).
		Joins("JOIN users ON users.id = entries.user_id").
		Where("users.role <> ?", models.RoleAdmin)

	if err := base.Session(&gorm.Session{}).
		Where("entries.date >= ?", thisWeekFirst).
		Count(&report.ThisWeekEntries).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("entries.date >= ? AND entries.date < ?", lastWeekFirst, thisWeekFirst).
		Count(&report.LastWeekEntries).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Where("role <> ?", models.RoleAdmin).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	var buckets []models.LedgerBucket
	if err := s.db.Where("date > ?", today.AddDate(0, 0, -7)).Find(&buckets).Error; err != nil {
		return nil, err
	}
	byUserDate := make(map[uint]map[string]models.LedgerBucket, len(buckets))
	for _, b := range buckets {
		if byUserDate[b.UserID] == nil {
			byUserDate[b.UserID] = make(map[string]models.LedgerBucket)
		}
		byUserDate[b.UserID][b.Date.Format("2006-01-02")] = b
	}

	for _, u := range users {
		days := byUserDate[u.ID]
		if len(days) == 0 {
			continue
		}
		row := UserDailyAverages{
			User:           UserRef{ID: u.ID, Name: u.Name, Email: u.Email},
			CaloriesPerDay: make([]DailyAverage, 0, 7),
		}
		for i := 0; i < 7; i++ {
			key := today.AddDate(0, 0, -i).Format("2006-01-02")
			row.CaloriesPerDay = append(row.CaloriesPerDay, DailyAverage{
				Date:     key,
				Calories: AverageCaloriesPerDay(days[key]), // zero bucket averages to 0
			})
		}
		report.AverageCaloriesPerDayPerUser = append(report.AverageCaloriesPerDayPerUser, row)
	}

	return report, nil
}
