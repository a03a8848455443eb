package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"
	"github.com/DandaAkhilReddy/reddyfit-backend/services"
	"github.com/DandaAkhilReddy/reddyfit-backend/utils"

	"github.com/gin-gonic/gin"
)

// mealLogger lets tests substitute the pipeline.
type mealLogger interface {
	LogMeal(ctx context.Context, userID uint, image []byte, mimeType string) (*models.MealRecord, error)
}

type mealReader interface {
	QueryByWindow(ctx context.Context, userID uint, start, end time.Time) ([]models.MealRecord, error)
}

type MealController struct {
	Pipeline mealLogger
	Records  mealReader

	// one outstanding logMeal per user; concurrent submits get a 409
	inflight sync.Map
}

func NewMealController(pipeline mealLogger, records mealReader) *MealController {
	return &MealController{Pipeline: pipeline, Records: records}
}

type LogMealRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	image, contentType, err := utils.ParseImageDataURI(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, busy := mc.inflight.LoadOrStore(uid, struct{}{}); busy {
		c.JSON(http.StatusConflict, gin.H{"error": "a meal is already being logged"})
		return
	}
	defer mc.inflight.Delete(uid)

	rec, err := mc.Pipeline.LogMeal(c.Request.Context(), uid, image, contentType)
	if err != nil {
		c.JSON(pipelineStatus(err), gin.H{"error": err.Error()})
		return
	}

	start, end := services.DayWindow(time.Now())
	if records, qerr := mc.Records.QueryByWindow(c.Request.Context(), uid, start, end); qerr == nil {
		services.EmitMealLogged(uid, rec, services.AggregateDaily(records))
	}

	c.JSON(http.StatusCreated, rec)
}

// Today returns today's records newest first plus their derived totals.
// Totals are recomputed from the records on every call, never cached.
func (mc *MealController) Today(c *gin.Context) {
	uid := c.GetUint("userID")

	start, end := services.DayWindow(time.Now())
	records, err := mc.Records.QueryByWindow(c.Request.Context(), uid, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"totals":  services.AggregateDaily(records),
	})
}

// List returns records in an arbitrary [from, to) window.
func (mc *MealController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
		return
	}

	records, err := mc.Records.QueryByWindow(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func pipelineStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAnImage):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoFoodDetected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrRecognitionFailure),
		errors.Is(err, services.ErrNutritionServiceFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
