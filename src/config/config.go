package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config รวมค่า environment ทั้งหมดที่ระบบใช้
type Config struct {
	MongoURI    string
	MongoDB     string
	Port        string
	FrontendURL string
	RedisURI    string

	AllowedOrigins string
	UploadDir      string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
}

// Load อ่านค่าจาก .env (ถ้ามี) และ environment variables
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := Config{
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "EduTrackDB"),
		Port:        getEnv("PORT", "4000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		RedisURI:    os.Getenv("REDIS_URI"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "edutrack"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
