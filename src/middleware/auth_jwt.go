package middleware

import (
	"strings"

	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Middleware ถือ dependency ที่ guard ต้องใช้ (users collection + redis)
type Middleware struct {
	db  *database.Mongo
	rdb *redis.Client
}

func New(db *database.Mongo, rdb *redis.Client) *Middleware {
	return &Middleware{db: db, rdb: rdb}
}

// tokenFromRequest ดึง token จาก Authorization header หรือ cookie "token"
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies("token")
}

// AuthJWT ตรวจ token และโหลด user ปัจจุบันจาก store
// ต้อง re-fetch เสมอ เพื่อให้ token ของ user ที่ถูกลบไปแล้วใช้ไม่ได้
func (m *Middleware) AuthJWT(c *fiber.Ctx) error {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Access token required")
	}

	if utils.IsTokenBlacklisted(m.rdb, tokenStr) {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
	}

	var user models.User
	if err := m.db.Users.FindOne(c.Context(), bson.M{"_id": id}).Decode(&user); err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token - user not found")
	}

	c.Locals("id", user.ID.Hex())
	c.Locals("userId", user.UserID)
	c.Locals("role", string(user.Role))

	return c.Next()
}

// OptionalAuthJWT เหมือน AuthJWT แต่ไม่ปฏิเสธ request ที่ไม่มี token
// ใช้กับ create-admin ซึ่งต้องเปิดให้ bootstrap admin คนแรกได้
func (m *Middleware) OptionalAuthJWT(c *fiber.Ctx) error {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" || utils.IsTokenBlacklisted(m.rdb, tokenStr) {
		return c.Next()
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Next()
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return c.Next()
	}

	var user models.User
	if err := m.db.Users.FindOne(c.Context(), bson.M{"_id": id}).Decode(&user); err != nil {
		return c.Next()
	}

	c.Locals("id", user.ID.Hex())
	c.Locals("userId", user.UserID)
	c.Locals("role", string(user.Role))

	return c.Next()
}

// RequireAdmin ปล่อยผ่านเฉพาะ role admin — ตรวจแบบ exhaustive กับ enum
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	raw, _ := c.Locals("role").(string)
	role, ok := models.ParseRole(raw)
	if !ok {
		return utils.HandleError(c, fiber.StatusForbidden, "Admin access required")
	}

	switch role {
	case models.RoleAdmin:
		return c.Next()
	case models.RoleStudent:
		return utils.HandleError(c, fiber.StatusForbidden, "Admin access required")
	}
	return utils.HandleError(c, fiber.StatusForbidden, "Admin access required")
}
