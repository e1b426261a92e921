package controllers

import (
	"strconv"

	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/services/attendance"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AttendanceController endpoint ฝั่ง admin ของระบบเช็คชื่อ
type AttendanceController struct {
	attendance *attendance.Service
}

func NewAttendanceController(svc *attendance.Service) *AttendanceController {
	return &AttendanceController{attendance: svc}
}

// paginationFromQuery อ่าน page/limit จาก query string
func paginationFromQuery(c *fiber.Ctx) models.PaginationParams {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	return models.NewPaginationParams(page, limit)
}

// GenerateQR godoc
// @Summary      Create an attendance session with a scannable QR code
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.GenerateQRRequest true "Session details"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /admin/attendance/generate-qr [post]
func (ctl *AttendanceController) GenerateQR(c *fiber.Ctx) error {
	var req models.GenerateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title is required")
	}

	createdBy, _ := c.Locals("userId").(string)
	session, err := ctl.attendance.Create(c.Context(), req.Title, req.Description, req.ExpiresInHours, createdBy)
	if err != nil {
		if err == attendance.ErrTitleRequired {
			return utils.HandleError(c, fiber.StatusBadRequest, "Title is required")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to generate QR code", err)
	}

	return utils.HandleSuccess(c, fiber.StatusCreated, "QR Code generated successfully", fiber.Map{
		"sessionId":   session.SessionID,
		"title":       session.Title,
		"description": session.Description,
		"qrCode":      session.QRCode,
		"qrCodeUrl":   session.QRCodeURL,
		"expiresAt":   session.ExpiresAt,
		"isActive":    session.IsActive,
	})
}

// ListSessions godoc
// @Summary      List attendance sessions
// @Description  Newest first; the base64 QR artifact is excluded from list payloads
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        isActive query bool false "Filter by active flag"
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  models.Response
// @Router       /admin/attendance/sessions [get]
func (ctl *AttendanceController) ListSessions(c *fiber.Ctx) error {
	var isActive *bool
	if raw := c.Query("isActive"); raw != "" {
		v := raw == "true"
		isActive = &v
	}

	sessions, pagination, err := ctl.attendance.List(c.Context(), isActive, paginationFromQuery(c))
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch attendance sessions", err)
	}

	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance sessions retrieved successfully", fiber.Map{
		"sessions":   sessions,
		"pagination": pagination,
	})
}

// GetSession godoc
// @Summary      Get one attendance session
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId path string true "Session ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/attendance/session/{sessionId} [get]
func (ctl *AttendanceController) GetSession(c *fiber.Ctx) error {
	session, err := ctl.attendance.Get(c.Context(), c.Params("sessionId"))
	if err != nil {
		if err == attendance.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch attendance session", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance session retrieved successfully", session)
}

// UpdateSession godoc
// @Summary      Update an attendance session
// @Description  Partial update of isActive / title / description; expiry is never touched
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId path string true "Session ID"
// @Param        body body models.UpdateSessionRequest true "Fields to update"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/attendance/session/{sessionId} [put]
func (ctl *AttendanceController) UpdateSession(c *fiber.Ctx) error {
	var req models.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	session, err := ctl.attendance.Update(c.Context(), c.Params("sessionId"), req)
	if err != nil {
		if err == attendance.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update attendance session", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance session updated successfully", session)
}

// DeleteSession godoc
// @Summary      Delete an attendance session and its QR artifact
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId path string true "Session ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/attendance/session/{sessionId} [delete]
func (ctl *AttendanceController) DeleteSession(c *fiber.Ctx) error {
	err := ctl.attendance.Delete(c.Context(), c.Params("sessionId"))
	if err != nil {
		if err == attendance.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete attendance session", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Attendance session deleted successfully", nil)
}

// ExportAttendees godoc
// @Summary      Download the attendee list as an xlsx file
// @Tags         attendance
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        sessionId path string true "Session ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  models.Response
// @Router       /admin/attendance/session/{sessionId}/export [get]
func (ctl *AttendanceController) ExportAttendees(c *fiber.Ctx) error {
	data, filename, err := ctl.attendance.ExportAttendees(c.Context(), c.Params("sessionId"))
	if err != nil {
		if err == attendance.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Attendance session not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to export attendees", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
