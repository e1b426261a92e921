package routes

import (
	"Backend-EduTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API (login แล้วใช้ได้ทุก role)
func studentRoutes(api fiber.Router, ctl Controllers, mw *middleware.Middleware) {
	student := api.Group("/student", mw.AuthJWT)

	student.Post("/mark-attendance", ctl.Student.MarkAttendance)
	student.Get("/my-attendance", ctl.Student.MyAttendance)
	student.Get("/attendance-session/:sessionId", ctl.Student.SessionForStudent)
	student.Get("/active-sessions", ctl.Student.ActiveSessions)
	student.Get("/my-course", ctl.Student.MyCourse)
}
