package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Fixed bootstrap admin credential, usable even when the store is down.
	BootstrapUsername string
	BootstrapPassword string

	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:               getEnv("DB_SOURCE", "banhmi.db"),
		Port:                   getEnv("PORT", "8000"),
		JWTSecret:              getEnv("JWT_SECRET", "changeme"),
		JWTTTL:                 time.Duration(24) * time.Hour,
		BootstrapUsername:      getEnv("BOOTSTRAP_USERNAME", "admin"),
		BootstrapPassword:      getEnv("BOOTSTRAP_PASSWORD", "13681368"),
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", "deuqalvq5"),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", "banhmi_preset"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
