package controllers

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
)

type HealthRecordController struct {
	Svc   *services.HealthRecordService
	Users *services.UserService
}

func NewHealthRecordController(svc *services.HealthRecordService, users *services.UserService) *HealthRecordController {
	return &HealthRecordController{Svc: svc, Users: users}
}

func (h *HealthRecordController) Record(c *gin.Context) {
	user, ok := currentUser(c, h.Users)
	if !ok {
		return
	}

	var input struct {
		Temperature      float64 `json:"temperature"`
		HealthRating     int     `json:"health_rating" binding:"omitempty,min=1,max=10"`
		CaloriesConsumed float64 `json:"calories_consumed" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Svc.Record(user, services.HealthRecordInput{
		Temperature:      input.Temperature,
		HealthRating:     input.HealthRating,
		CaloriesConsumed: input.CaloriesConsumed,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *HealthRecordController) List(c *gin.Context) {
	uid, _ := currentUserID(c)
	recs, err := h.Svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"health_records": recs})
}
