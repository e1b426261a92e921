package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseRole(t *testing.T) {
	t.Run("KnownRoles", func(t *testing.T) {
		role, ok := ParseRole("admin")
		assert.True(t, ok)
		assert.Equal(t, RoleAdmin, role)

		role, ok = ParseRole("student")
		assert.True(t, ok)
		assert.Equal(t, RoleStudent, role)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		_, ok := ParseRole("superuser")
		assert.False(t, ok)

		_, ok = ParseRole("")
		assert.False(t, ok)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		// role ใน token เป็น lowercase เสมอ
		_, ok := ParseRole("Admin")
		assert.False(t, ok)
	})
}

func TestUserPublic(t *testing.T) {
	courseID := "64f000000000000000000001"
	user := User{
		ID:        primitive.NewObjectID(),
		UserID:    "std001",
		Password:  "$2a$10$hashedvalue",
		Role:      RoleStudent,
		CourseID:  courseID,
		CreatedAt: time.Now(),
	}

	pub := user.Public()
	assert.Equal(t, user.ID, pub.ID)
	assert.Equal(t, "std001", pub.UserID)
	assert.Equal(t, RoleStudent, pub.Role)
	assert.Equal(t, courseID, pub.CourseID)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{
		UserID:   "std001",
		Password: "$2a$10$hashedvalue",
		Role:     RoleStudent,
	}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "hashedvalue")
}
