package routes

import (
	"Backend-EduTrack/src/controllers"
	"Backend-EduTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controllers รวม controller ทุกตัวที่ router ต้องใช้
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Attendance *controllers.AttendanceController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
}

func InitRoutes(app *fiber.App, ctl Controllers, mw *middleware.Middleware) {
	api := app.Group("/api")

	userRoutes(api, ctl, mw)
	adminRoutes(api, ctl, mw)
	studentRoutes(api, ctl, mw)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
