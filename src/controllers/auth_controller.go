package controllers

import (
	"fmt"
	"time"

	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/services/users"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// AuthController login/logout ของทั้ง admin และ student
type AuthController struct {
	users *users.Service
	rdb   *redis.Client
}

func NewAuthController(users *users.Service, rdb *redis.Client) *AuthController {
	return &AuthController{users: users, rdb: rdb}
}

// Login godoc
// @Summary      Log in with userId and password
// @Description  Issues a JWT (also set as an http-only cookie) valid for 24 hours
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Router       /user/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "All fields are required")
	}

	if utils.IsRateLimited(ac.rdb, req.UserID) {
		remaining := utils.RemainingCooldown(ac.rdb, req.UserID)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts. Please try again in %d seconds.", int(remaining.Seconds())))
	}

	user, err := ac.users.Authenticate(c.Context(), req.UserID, req.Password)
	if err != nil {
		utils.LogLoginAttempt(ac.rdb, req.UserID, false)
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	utils.LogLoginAttempt(ac.rdb, req.UserID, true)

	token, err := utils.GenerateJWT(user.ID.Hex(), user.UserID, string(user.Role))
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Token generation failed", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(utils.TokenTTL),
		HTTPOnly: true,
	})

	// รูปแบบ response เดิมของ frontend: token และ user อยู่ top-level
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"userId": user.UserID,
			"role":   user.Role,
			"id":     user.ID.Hex(),
		},
	})
}

// Logout godoc
// @Summary      Log out and revoke the current token
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /user/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := c.Get("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	} else {
		token = c.Cookies("token")
	}
	if token != "" {
		if err := utils.BlacklistToken(ac.rdb, token, utils.TokenTTL); err != nil {
			return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Logout failed", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return utils.HandleSuccess(c, fiber.StatusOK, "Logout successful", nil)
}
