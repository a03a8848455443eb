package config

import (
	"fmt"
	"log"

	"github.com/DandaAkhilReddy/reddyfit-backend/models"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string   `env:"PORT" envDefault:"8080"`
	JWTSecret string   `env:"JWT_SECRET"`
	DB        Database `envPrefix:"DB_"`
	AWS       AWS      `envPrefix:"AWS_"`
	Edamam    Edamam   `envPrefix:"EDAMAM_"`
}

type Edamam struct {
	AppID  string `env:"APP_ID"`
	AppKey string `env:"APP_KEY"`
}

type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	User     string `env:"USER" envDefault:"reddyfit"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"reddyfit"`
	Port     string `env:"PORT" envDefault:"5432"`
}

type AWS struct {
	Region        string `env:"REGION" envDefault:"us-east-1"`
	S3Bucket      string `env:"S3_BUCKET"`
	CloudFrontURL string `env:"CLOUDFRONT_URL"`
	SESFrom       string `env:"SES_FROM"`
	SNSFCMArn     string `env:"SNS_FCM_ARN"`
	SNSAPNSArn    string `env:"SNS_APNS_ARN"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine in production

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

var DB *gorm.DB

func InitDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MealRecord{},
		&models.WorkoutPlan{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
