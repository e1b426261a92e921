package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisCtx = context.Background()

const (
	maxLoginAttempts = 5
	loginCooldown    = 5 * time.Minute
)

// LogLoginAttempt นับจำนวนครั้งที่ login พลาดต่อ userId
// สำเร็จเมื่อไหร่ล้าง counter ทิ้ง; ไม่มี Redis = ข้าม
func LogLoginAttempt(client *redis.Client, userID string, success bool) {
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", userID)
	if success {
		client.Del(redisCtx, key)
		return
	}

	n, err := client.Incr(redisCtx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		client.Expire(redisCtx, key, loginCooldown)
	}
}

// IsRateLimited ตรวจว่า userId นี้โดน cooldown อยู่หรือไม่
// Returns false if Redis is not available (development mode)
func IsRateLimited(client *redis.Client, userID string) bool {
	if client == nil {
		return false
	}

	key := fmt.Sprintf("login_attempts:%s", userID)
	n, err := client.Get(redisCtx, key).Int64()
	if err != nil {
		return false // รวมกรณี redis.Nil
	}
	return n >= maxLoginAttempts
}

// RemainingCooldown เวลาที่เหลือก่อน login ได้อีกครั้ง
func RemainingCooldown(client *redis.Client, userID string) time.Duration {
	if client == nil {
		return 0
	}

	key := fmt.Sprintf("login_attempts:%s", userID)
	ttl, err := client.TTL(redisCtx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// BlacklistToken เพิ่ม token เข้า blacklist (ใช้ตอน logout)
// Returns nil if Redis is not available (development mode)
func BlacklistToken(client *redis.Client, token string, expiresIn time.Duration) error {
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(redisCtx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจว่า token อยู่ใน blacklist หรือไม่
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(client *redis.Client, token string) bool {
	if client == nil {
		return false
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if _, err := client.Get(redisCtx, key).Result(); err != nil {
		return false // รวมกรณี redis.Nil
	}
	return true
}
