package controllers

import (
	"net/http"

	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (u *UserController) GetProfile(c *gin.Context) {
	user, ok := currentUser(c, u.Svc)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

func (u *UserController) UpdatePicture(c *gin.Context) {
	uid, _ := currentUserID(c)

	var input struct {
		Picture string `json:"picture" binding:"required"` // data-URI base64
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := u.Svc.UpdatePicture(uid, input.Picture)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_picture": url})
}
