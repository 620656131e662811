package controllers

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/services"
	"github.com/vanshikasingh06/health-mate/utils"

	"github.com/gin-gonic/gin"
)

type BMIController struct {
	Users *services.UserService
}

func NewBMIController(users *services.UserService) *BMIController {
	return &BMIController{Users: users}
}

// BMIReport recomputes everything from the current profile; nothing here
// is read from stored snapshots.
type BMIReport struct {
	BMI      float64  `json:"bmi"`
	Category string   `json:"category"`
	Advice   []string `json:"advice"`
}

func (b *BMIController) Report(c *gin.Context) {
	user, ok := currentUser(c, b.Users)
	if !ok {
		return
	}

	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	category := utils.BMICategory(bmi, user.Gender)
	c.JSON(http.StatusOK, BMIReport{
		BMI:      bmi,
		Category: category,
		Advice:   utils.BMIAdvice(category),
	})
}
