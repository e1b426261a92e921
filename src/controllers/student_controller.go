package controllers

import (
	"errors"

	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/services/attendance"
	"Backend-EduTrack/src/services/courses"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
)

// StudentController endpoint ฝั่งนักเรียน (เช็คชื่อ + ดูคอร์สตัวเอง)
type StudentController struct {
	attendance *attendance.Service
	courses    *courses.Service
}

func NewStudentController(att *attendance.Service, crs *courses.Service) *StudentController {
	return &StudentController{attendance: att, courses: crs}
}

// MarkAttendance godoc
// @Summary      Mark attendance for a session
// @Description  At most one check-in per student per session
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.MarkAttendanceRequest true "Session to check into"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /student/mark-attendance [post]
func (ctl *StudentController) MarkAttendance(c *fiber.Ctx) error {
	var req models.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Session ID is required")
	}

	// identity มาจาก token เสมอ ไม่เชื่อ body
	userID, _ := c.Locals("userId").(string)
	userName := req.UserName
	if userName == "" {
		userName = userID
	}

	result, err := ctl.attendance.CheckIn(c.Context(), req.SessionID, userID, userName)
	if err != nil {
		var already *attendance.AlreadyMarkedError
		switch {
		case errors.Is(err, attendance.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		case errors.Is(err, attendance.ErrSessionInactive):
			return utils.HandleError(c, fiber.StatusBadRequest, "Attendance session is no longer active")
		case errors.Is(err, attendance.ErrSessionExpired):
			return utils.HandleError(c, fiber.StatusBadRequest, "Attendance session has expired")
		case errors.As(err, &already):
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Message: "Attendance already marked for this session",
				Data:    fiber.Map{"markedAt": already.MarkedAt},
			})
		default:
			return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to mark attendance", err)
		}
	}

	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance marked successfully", result)
}

// MyAttendance godoc
// @Summary      List the caller's own attendance history
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  models.Response
// @Router       /student/my-attendance [get]
func (ctl *StudentController) MyAttendance(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	history, pagination, err := ctl.attendance.MyHistory(c.Context(), userID, paginationFromQuery(c))
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch attendance history", err)
	}

	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance history retrieved successfully", fiber.Map{
		"history":    history,
		"pagination": pagination,
	})
}

// SessionForStudent godoc
// @Summary      Get a session as seen by a student
// @Description  Attendee list is truncated to the most recent entries
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId path string true "Session ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /student/attendance-session/{sessionId} [get]
func (ctl *StudentController) SessionForStudent(c *fiber.Ctx) error {
	view, err := ctl.attendance.GetForStudent(c.Context(), c.Params("sessionId"))
	if err != nil {
		if err == attendance.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch attendance session", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance session retrieved successfully", view)
}

// ActiveSessions godoc
// @Summary      List sessions a student can still check into
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  models.Response
// @Router       /student/active-sessions [get]
func (ctl *StudentController) ActiveSessions(c *fiber.Ctx) error {
	sessions, pagination, err := ctl.attendance.ActiveSessions(c.Context(), paginationFromQuery(c))
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch active sessions", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Active sessions retrieved successfully", fiber.Map{
		"sessions":   sessions,
		"pagination": pagination,
	})
}

// MyCourse godoc
// @Summary      Get the course assigned to the caller
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /student/my-course [get]
func (ctl *StudentController) MyCourse(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	course, err := ctl.courses.MyCourse(c.Context(), userID)
	if err != nil {
		switch err {
		case courses.ErrNoCourse:
			return utils.HandleError(c, fiber.StatusNotFound, "No course assigned")
		case courses.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		default:
			return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch course", err)
		}
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Course retrieved successfully", course)
}
