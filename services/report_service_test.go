package services

import (
	"testing"

	"github.com/aditya-yaduvanshi/calorie-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyReportPartitionsEntryCounts(t *testing.T) {
	db := testDB(t)
	svc := NewEntryService(db)
	admin := seedUser(t, db, "Ad Min", "admin@example.com", models.RoleAdmin)
	alice := seedUser(t, db, "Alice One", "alice@example.com", models.RoleGeneral)
	bob := seedUser(t, db, "Bob Two", "bob@example.com", models.RoleGeneral)

	// this week: two entries
	_, _, err := svc.Create(actorFor(alice), CreateEntryInput{Name: "apple", Calorie: 50, Price: 1, Date: dateStr(1), Time: "10:00"})
	require.NoError(t, err)
	_, _, err = svc.Create(actorFor(bob), CreateEntryInput{Name: "bagel", Calorie: 250, Price: 2, Date: dateStr(6), Time: "10:00"})
	require.NoError(t, err)

	// last week: one entry
	_, _, err = svc.Create(actorFor(alice), CreateEntryInput{Name: "pasta", Calorie: 600, Price: 7, Date: dateStr(10), Time: "19:00"})
	require.NoError(t, err)

	// outside both windows
	_, _, err = svc.Create(actorFor(bob), CreateEntryInput{Name: "old toast", Calorie: 150, Price: 1, Date: dateStr(20), Time: "08:00"})
	require.NoError(t, err)

	// admin entries never count
	_, _, err = svc.Create(actorFor(admin), CreateEntryInput{Name: "admin snack", Calorie: 100, Price: 1, Date: dateStr(1), Time: "11:00", User: admin.ID})
	require.NoError(t, err)

	report, err := NewReportService(db).Weekly()
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.ThisWeekEntries)
	assert.Equal(t, int64(1), report.LastWeekEntries)
}

func TestWeeklyReportAveragesPerUserPerDay(t *testing.T) {
	db := testDB(t)
	svc := NewEntryService(db)
	seedUser(t, db, "Ad Min", "admin@example.com", models.RoleAdmin)
	alice := seedUser(t, db, "Alice One", "alice@example.com", models.RoleGeneral)
	seedUser(t, db, "Carol Three", "carol@example.com", models.RoleGeneral)

	// two entries on the same day -> average, one on another day
	_, _, err := svc.Create(actorFor(alice), CreateEntryInput{Name: "toast", Calorie: 200, Price: 1, Date: dateStr(1), Time: "08:00"})
	require.NoError(t, err)
	_, _, err = svc.Create(actorFor(alice), CreateEntryInput{Name: "eggs", Calorie: 300, Price: 2, Date: dateStr(1), Time: "09:00"})
	require.NoError(t, err)
	_, _, err = svc.Create(actorFor(alice), CreateEntryInput{Name: "steak", Calorie: 900, Price: 15, Date: dateStr(3), Time: "20:00"})
	require.NoError(t, err)

	report, err := NewReportService(db).Weekly()
	require.NoError(t, err)

	// carol has no buckets in the window and is omitted entirely
	require.Len(t, report.AverageCaloriesPerDayPerUser, 1)
	row := report.AverageCaloriesPerDayPerUser[0]
	assert.Equal(t, alice.ID, row.User.ID)
	require.Len(t, row.CaloriesPerDay, 7)

	byDate := map[string]float64{}
	for _, d := range row.CaloriesPerDay {
		byDate[d.Date] = d.Calories
	}
	assert.Equal(t, 250.0, byDate[dateStr(1)])
	assert.Equal(t, 900.0, byDate[dateStr(3)])
	assert.Zero(t, byDate[dateStr(2)])
}
