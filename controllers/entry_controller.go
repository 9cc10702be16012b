package controllers

import (
	"net/http"
	"strconv"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/middlewares"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/services"

	"github.com/gin-gonic/gin"
)

func ListEntries(c *gin.Context) {
	user := middlewares.Identity(c)
	svc := services.NewEntryService(config.DB)

	entries, err := svc.List(user, services.ListEntriesInput{
		FromDate: c.Query("fromDate"),
		ToDate:   c.Query("toDate"),
		OnDate:   c.Query("onDate"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(entries))
	for i := range entries {
		e := entryJSON(&entries[i])
		e["user"] = gin.H{
			"id":    entries[i].User.ID,
			"name":  entries[i].User.Name,
			"email": entries[i].User.Email,
		}
		list = append(list, e)
	}

	// admins see everyone's entries; a single "today" bucket only makes
	// sense for a general user's own ledger
	var today models.LedgerBucket
	if user.Role != models.RoleAdmin {
		if today, err = svc.TodayBucket(user.ID); err != nil {
			fail(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"error": 0,
		"data": gin.H{
			"entries":           list,
			"calorieCountToday": today.TotalCalorie,
			"priceSpentToday":   today.TotalPrice(),
		},
	})
}

type CreateEntryInput struct {
	Name    string   `json:"name"`
	Calorie *int     `json:"calorie"`
	Price   *float64 `json:"price"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	User    uint     `json:"user"`
}

func CreateEntry(c *gin.Context) {
	user := middlewares.Identity(c)

	var input CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Date == "" || input.Time == "" ||
		input.Calorie == nil || input.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "All fields are required and cannot be empty!"})
		return
	}

	svc := services.NewEntryService(config.DB)
	entry, _, err := svc.Create(user, services.CreateEntryInput{
		Name:    input.Name,
		Calorie: *input.Calorie,
		Price:   *input.Price,
		Date:    input.Date,
		Time:    input.Time,
		User:    input.User,
	})
	if err != nil {
		fail(c, err)
		return
	}

	today, err := svc.TodayBucket(entry.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error": 0,
		"data": gin.H{
			"entry":             entryJSON(entry),
			"calorieCountToday": today.TotalCalorie,
			"priceSpentToday":   today.TotalPrice(),
		},
	})
}

type UpdateEntryInput struct {
	Name    *string  `json:"name"`
	Calorie *int     `json:"calorie"`
	Price   *float64 `json:"price"`
	Date    *string  `json:"date"`
	Time    *string  `json:"time"`
	User    uint     `json:"user"`
}

func UpdateEntry(c *gin.Context) {
	user := middlewares.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid entry id!"})
		return
	}

	var input UpdateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid input data!"})
		return
	}

	svc := services.NewEntryService(config.DB)
	entry, today, err := svc.Update(user, uint(id), services.UpdateEntryInput{
		Name:    input.Name,
		Calorie: input.Calorie,
		Price:   input.Price,
		Date:    input.Date,
		Time:    input.Time,
		User:    input.User,
	})
	if err != nil {
		fail(c, err)
		return
	}

	data := gin.H{"entry": entryJSON(entry)}
	if today != nil {
		data["calorieCountToday"] = today.TotalCalorie
		data["priceSpentToday"] = today.TotalPrice()
	}
	c.JSON(http.StatusOK, gin.H{"error": 0, "data": data})
}

func DeleteEntry(c *gin.Context) {
	user := middlewares.Identity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": 1, "msg": "Invalid entry id!"})
		return
	}

	if err := services.NewEntryService(config.DB).Delete(user, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
