package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedis สร้าง Redis client สำหรับ rate limiting และ token blacklist
// คืน nil ถ้าไม่ได้ตั้งค่า REDIS_URI (dev mode — ระบบทำงานต่อได้)
func NewRedis(uri string) *redis.Client {
	if uri == "" {
		log.Println("⚠️ Redis not configured. Rate limiting and token blacklist are disabled.")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: uri, // เช่น localhost:6379
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
