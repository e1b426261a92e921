// error_utils.go
package utils

import (
	"Backend-EduTrack/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ส่ง error envelope เดียวกันทุก endpoint
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.Response{
		Success: false,
		Message: message,
	})
}

// HandleErrorWithDetail แนบรายละเอียด error ไปด้วย (ใช้กับ 500)
func HandleErrorWithDetail(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(models.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// HandleSuccess ส่งผลลัพธ์สำเร็จพร้อม data
func HandleSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
