package controllers

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	Svc *services.TrackerService
}

func NewTrackerController(svc *services.TrackerService) *TrackerController {
	return &TrackerController{Svc: svc}
}

type exerciseInput struct {
	ExerciseType string `json:"exercise_type" binding:"required"`
	Duration     int    `json:"duration" binding:"required,gt=0"` // minutes
	Intensity    string `json:"intensity" binding:"required"`
}

func (t *TrackerController) LogExercise(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input exerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := t.Svc.LogExercise(uid, input.ExerciseType, input.Duration, input.Intensity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (t *TrackerController) ListExercise(c *gin.Context) {
	uid, _ := currentUserID(c)
	logs, err := t.Svc.ListExercise(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise_logs": logs})
}

type waterInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"` // liters
}

func (t *TrackerController) LogWater(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := t.Svc.LogWater(uid, input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// ListWater also carries the page-specific daily total and fixed target.
func (t *TrackerController) ListWater(c *gin.Context) {
	uid, _ := currentUserID(c)

	logs, err := t.Svc.ListWater(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	today, err := t.Svc.TodayWater(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"water_logs":   logs,
		"today_water":  today,
		"target_water": services.DefaultWaterTarget,
	})
}

type sleepInput struct {
	Hours   float64 `json:"hours" binding:"required,gt=0"`
	Quality string  `json:"quality"`
}

func (t *TrackerController) LogSleep(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input sleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := t.Svc.LogSleep(uid, input.Hours, input.Quality)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (t *TrackerController) ListSleep(c *gin.Context) {
	uid, _ := currentUserID(c)
	logs, err := t.Svc.ListSleep(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sleep_logs": logs})
}

type moodInput struct {
	Mood  string `json:"mood" binding:"required"`
	Notes string `json:"notes"`
}

func (t *TrackerController) LogMood(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input moodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := t.Svc.LogMood(uid, input.Mood, input.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (t *TrackerController) ListMood(c *gin.Context) {
	uid, _ := currentUserID(c)
	logs, err := t.Svc.ListMood(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mood_logs": logs})
}
