package main

import (
	"context"
	"log"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/config"
	"github.com/DandaAkhilReddy/reddyfit-backend/controllers"
	"github.com/DandaAkhilReddy/reddyfit-backend/models"
	"github.com/DandaAkhilReddy/reddyfit-backend/routes"
	"github.com/DandaAkhilReddy/reddyfit-backend/services"
	"github.com/DandaAkhilReddy/reddyfit-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	config.InitDB(cfg)
	utils.InitMailer(cfg.AWS.Region, cfg.AWS.SESFrom)

	images, err := utils.NewS3ImageStore(cfg.AWS.Region, cfg.AWS.S3Bucket, cfg.AWS.CloudFrontURL)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	recognizer, err := services.NewRekognitionService(cfg.AWS.Region)
	if err != nil {
		log.Fatalf("rekognition: %v", err)
	}
	nutrition := services.NewEdamamService(cfg.Edamam.AppID, cfg.Edamam.AppKey)

	records := services.NewMealRecordStore(config.DB)
	plans := services.NewWorkoutPlanStore(config.DB)
	pipeline := services.NewMealPipeline(recognizer, nutrition, images, records)

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB, cfg.AWS.Region, cfg.AWS.SNSFCMArn, cfg.AWS.SNSAPNSArn)
	if err != nil {
		log.Fatalf("push: %v", err)
	}
	services.InitEventDeps(hub, push)

	// reclaim image blobs left behind by pipeline runs that failed after upload
	sweeper := services.NewOrphanSweeper(images, records, time.Hour)
	go sweeper.RunPeriodic(context.Background(), 6*time.Hour, listUserIDs)

	r := routes.SetupRouter(routes.Controllers{
		Meals:    controllers.NewMealController(pipeline, records),
		Workouts: controllers.NewWorkoutController(plans),
		Devices:  controllers.NewDeviceController(push),
		Realtime: controllers.NewRealtimeController(hub),
	})
	r.Run(":" + cfg.Port)
}

func listUserIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := config.DB.WithContext(ctx).Model(&models.User{}).Pluck("id", &ids).Error
	return ids, err
}
