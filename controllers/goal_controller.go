package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

type goalInput struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	Target      string  `json:"target" binding:"required"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	Deadline    string  `json:"deadline"` // YYYY-MM-DD, optional
}

func (g *GoalController) Create(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var deadline *time.Time
	if input.Deadline != "" {
		d, err := time.ParseInLocation("2006-01-02", input.Deadline, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline, use YYYY-MM-DD"})
			return
		}
		deadline = &d
	}

	goal, err := g.Svc.Create(uid, services.GoalInput{
		GoalType:    input.GoalType,
		Target:      input.Target,
		TargetValue: input.TargetValue,
		Unit:        input.Unit,
		Deadline:    deadline,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (g *GoalController) List(c *gin.Context) {
	uid, _ := currentUserID(c)
	goals, err := g.Svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (g *GoalController) UpdateProgress(c *gin.Context) {
	uid, _ := currentUserID(c)

	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	// pointer so an explicit zero still binds
	var input struct {
		CurrentValue *float64 `json:"current_value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := g.Svc.UpdateProgress(uint(goalID), uid, *input.CurrentValue)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
