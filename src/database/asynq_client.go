package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// NewAsynqClient สร้าง Asynq client สำหรับ schedule งานตามเวลา (เช่น ลบไฟล์ QR ตอนหมดอายุ)
// คืน nil ถ้าไม่มี Redis — ผู้เรียกต้องเช็ค nil เอง
func NewAsynqClient(redisURI string) *asynq.Client {
	if redisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisURI})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
