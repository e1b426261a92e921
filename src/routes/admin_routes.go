package routes

import (
	"Backend-EduTrack/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API (ต้องเป็น admin เท่านั้น)
func adminRoutes(api fiber.Router, ctl Controllers, mw *middleware.Middleware) {
	admin := api.Group("/admin", mw.AuthJWT, mw.RequireAdmin)

	// attendance sessions
	admin.Post("/attendance/generate-qr", ctl.Attendance.GenerateQR)
	admin.Get("/attendance/sessions", ctl.Attendance.ListSessions)
	admin.Get("/attendance/session/:sessionId", ctl.Attendance.GetSession)
	admin.Put("/attendance/session/:sessionId", ctl.Attendance.UpdateSession)
	admin.Delete("/attendance/session/:sessionId", ctl.Attendance.DeleteSession)
	admin.Get("/attendance/session/:sessionId/export", ctl.Attendance.ExportAttendees) // ดาวน์โหลด xlsx

	// user management
	admin.Get("/getAllStudent", ctl.User.GetAllStudents)
	admin.Get("/getAllAdmin", ctl.User.GetAllAdmins)
	admin.Get("/user/:userId", ctl.User.GetUser)
	admin.Put("/user/:userId", ctl.User.UpdateUser) // assign / unassign course
	admin.Put("/user/:userId/password", ctl.User.UpdatePassword)
	admin.Delete("/user/:userId", ctl.User.DeleteUser)

	// courses
	admin.Post("/create-course", ctl.Course.CreateCourse)
	admin.Get("/courses", ctl.Course.ListCourses)
	admin.Get("/course/:id", ctl.Course.GetCourse)
	admin.Put("/course/:id", ctl.Course.UpdateCourse)
	admin.Delete("/course/:id", ctl.Course.DeleteCourse)
	admin.Post("/addLecture/:courseId", ctl.Course.AddLecture)
	admin.Post("/addAssignments/:courseId", ctl.Course.AddAssignment)
	admin.Post("/addNotes/:courseId", ctl.Course.AddNote)
	admin.Delete("/deleteLecture/:courseId/:lectureId", ctl.Course.DeleteLecture)
	admin.Delete("/deleteAssignment/:courseId/:assignmentId", ctl.Course.DeleteAssignment)
	admin.Delete("/deleteNote/:courseId/:noteId", ctl.Course.DeleteNote)
}
