package controllers

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc   *services.DashboardService
	Users *services.UserService
}

func NewDashboardController(svc *services.DashboardService, users *services.UserService) *DashboardController {
	return &DashboardController{Svc: svc, Users: users}
}

func (d *DashboardController) Summary(c *gin.Context) {
	user, ok := currentUser(c, d.Users)
	if !ok {
		return
	}

	out, err := d.Svc.Summary(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
