package controllers

import (
	"net/http"

	"github.com/DandaAkhilReddy/reddyfit-backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Plans *services.WorkoutPlanStore
}

func NewWorkoutController(plans *services.WorkoutPlanStore) *WorkoutController {
	return &WorkoutController{Plans: plans}
}

type CreatePlanRequest struct {
	Plan             string   `json:"plan" binding:"required"`
	BasedOnEquipment []string `json:"based_on_equipment"`
}

func (wc *WorkoutController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := wc.Plans.Append(c.Request.Context(), uid, req.Plan, req.BasedOnEquipment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (wc *WorkoutController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	plans, err := wc.Plans.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}
