package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role ระดับสิทธิ์ของผู้ใช้ — ค่าอื่นนอกจากสองค่านี้ถือว่า invalid
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStudent:
		return RoleStudent, true
	default:
		return "", false
	}
}

// User บัญชีผู้ใช้ (admin หรือ student)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"userId" json:"userId" example:"EMP001"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, ไม่ส่งกลับ
	Role     Role               `bson:"role" json:"role" enums:"admin,student"`
	CourseID string             `bson:"courseId,omitempty" json:"courseId,omitempty"` // weak reference ไปยัง Course

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateUserRequest payload สำหรับ create-admin / create-student
// ฟิลด์ Password ใช้ตัวใหญ่ตาม wire format เดิมของ frontend
type CreateUserRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"Password" validate:"required,min=6"`
}

// LoginRequest payload สำหรับ login
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// UpdatePasswordRequest payload สำหรับเปลี่ยนรหัสผ่านโดย admin
type UpdatePasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UpdateUserRequest partial update — ตอนนี้มีแค่การผูกคอร์ส
type UpdateUserRequest struct {
	CourseID *string `json:"courseId"`
}

// PublicUser มุมมองของ User ที่ปลอดภัยต่อการส่งออก
type PublicUser struct {
	ID        primitive.ObjectID `json:"id"`
	UserID    string             `json:"userId"`
	Role      Role               `json:"role"`
	CourseID  string             `json:"courseId,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Public ตัด field ที่ไม่ควรออกนอกระบบ (password hash)
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		UserID:    u.UserID,
		Role:      u.Role,
		CourseID:  u.CourseID,
		CreatedAt: u.CreatedAt,
	}
}
