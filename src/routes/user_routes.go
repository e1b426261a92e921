package routes

import (
	"Backend-EduTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ auth และการสมัครผู้ใช้
func userRoutes(api fiber.Router, ctl Controllers, mw *middleware.Middleware) {
	user := api.Group("/user")

	user.Post("/login", ctl.Auth.Login)                       // 🔐 login
	user.Post("/logout", mw.AuthJWT, ctl.Auth.Logout)         // ออกจากระบบ + blacklist token
	user.Post("/create-admin", mw.OptionalAuthJWT, ctl.User.CreateAdmin) // admin คนแรกสมัครได้โดยไม่ต้อง login
	user.Post("/create-student", mw.AuthJWT, mw.RequireAdmin, ctl.User.CreateStudent)
}
