package controllers

import (
	"fmt"

	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/services/users"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController สร้าง/จัดการบัญชีผู้ใช้
type UserController struct {
	users *users.Service
}

func NewUserController(users *users.Service) *UserController {
	return &UserController{users: users}
}

// CreateAdmin godoc
// @Summary      Create an admin account
// @Description  Requires an admin token, except while no admin exists yet (first-run bootstrap)
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body body models.CreateUserRequest true "New admin"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Router       /user/create-admin [post]
func (uc *UserController) CreateAdmin(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "All fields are required")
	}

	// เปิดทางให้สร้าง admin คนแรกโดยไม่ต้อง auth; หลังจากนั้นต้องเป็น admin เท่านั้น
	hasAdmin, err := uc.users.HasAdmin(c.Context())
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Something went wrong, please try again later", err)
	}
	if hasAdmin {
		role, _ := c.Locals("role").(string)
		if models.Role(role) != models.RoleAdmin {
			return utils.HandleError(c, fiber.StatusForbidden, "Admin access required")
		}
	}

	return uc.create(c, req, models.RoleAdmin, "Admin created successfully")
}

// CreateStudent godoc
// @Summary      Create a student account
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateUserRequest true "New student"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /user/create-student [post]
func (uc *UserController) CreateStudent(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "All fields are required")
	}

	return uc.create(c, req, models.RoleStudent, "Student created successfully")
}

func (uc *UserController) create(c *fiber.Ctx, req models.CreateUserRequest, role models.Role, okMessage string) error {
	user, err := uc.users.Create(c.Context(), req.UserID, req.Password, role)
	if err != nil {
		if err == users.ErrUserExists {
			return utils.HandleError(c, fiber.StatusBadRequest, "UserId already exists")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Something went wrong, please try again later", err)
	}
	return utils.HandleSuccess(c, fiber.StatusCreated, okMessage, user.Public())
}

// GetAllStudents godoc
// @Summary      List all student accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /admin/getAllStudent [get]
func (uc *UserController) GetAllStudents(c *fiber.Ctx) error {
	students, err := uc.users.ListByRole(c.Context(), models.RoleStudent)
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch students", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Students retrieved successfully", students)
}

// GetAllAdmins godoc
// @Summary      List all admin accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /admin/getAllAdmin [get]
func (uc *UserController) GetAllAdmins(c *fiber.Ctx) error {
	admins, err := uc.users.ListByRole(c.Context(), models.RoleAdmin)
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch admins", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Admins retrieved successfully", admins)
}

// GetUser godoc
// @Summary      Get user details
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/user/{userId} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	user, err := uc.users.GetByUserID(c.Context(), userID)
	if err != nil {
		if err == users.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch user details", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "User details retrieved successfully", user.Public())
}

// UpdateUser godoc
// @Summary      Update a user (course assignment)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        body body models.UpdateUserRequest true "Fields to update"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/user/{userId} [put]
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.CourseID == nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	user, err := uc.users.AssignCourse(c.Context(), userID, *req.CourseID)
	if err != nil {
		if err == users.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update user", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "User updated successfully", user.Public())
}

// UpdatePassword godoc
// @Summary      Change a user's password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        body body models.UpdatePasswordRequest true "New password"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/user/{userId}/password [put]
func (uc *UserController) UpdatePassword(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Password must be at least 6 characters long")
	}
	if req.NewPassword != req.ConfirmPassword {
		return utils.HandleError(c, fiber.StatusBadRequest, "Passwords do not match")
	}

	user, err := uc.users.UpdatePassword(c.Context(), userID, req.NewPassword)
	if err != nil {
		if err == users.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update password", err)
	}

	return utils.HandleSuccess(c, fiber.StatusOK, "Password updated successfully", fiber.Map{
		"userId": user.UserID,
		"role":   user.Role,
	})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  An admin cannot delete their own account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/user/{userId} [delete]
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	callerUserID, _ := c.Locals("userId").(string)

	deleted, err := uc.users.Delete(c.Context(), userID, callerUserID)
	if err != nil {
		switch err {
		case users.ErrSelfDelete:
			return utils.HandleError(c, fiber.StatusBadRequest, "Cannot delete your own account")
		case users.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete user", err)
	}

	return utils.HandleSuccess(c, fiber.StatusOK, fmt.Sprintf("User %s deleted successfully", userID), fiber.Map{
		"deletedUser": fiber.Map{
			"userId": deleted.UserID,
			"role":   deleted.Role,
		},
	})
}
