package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64f000000000000000000001", "std001", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.ID)
	assert.Equal(t, "std001", claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}

func TestParseJWTRejectsTampered(t *testing.T) {
	token, err := GenerateJWT("64f000000000000000000001", "std001", "student")
	assert.NoError(t, err)

	// แก้ payload โดยไม่ re-sign — signature ต้องไม่ผ่าน
	tampered := token[:len(token)-4] + "xxxx"
	_, err = ParseJWT(tampered)
	assert.Error(t, err)
}
