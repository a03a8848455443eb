package controllers

import (
	"net/http"

	"github.com/DandaAkhilReddy/reddyfit-backend/config"
	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	FullName     string `json:"full_name"`
	FitnessGoals string `json:"fitness_goals"`
}

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":         user.Email,
		"full_name":     user.FullName,
		"fitness_goals": user.FitnessGoals,
	})
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.FullName = input.FullName
	user.FitnessGoals = input.FitnessGoals
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
