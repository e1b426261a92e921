package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiredAt(t *testing.T) {
	now := time.Now()
	session := AttendanceSession{ExpiresAt: now.Add(1 * time.Hour)}

	assert.False(t, session.ExpiredAt(now))
	assert.False(t, session.ExpiredAt(now.Add(59*time.Minute)))
	assert.True(t, session.ExpiredAt(now.Add(61*time.Minute)))
	// ตรงเวลา expiresAt พอดียังไม่นับว่าหมดอายุ
	assert.False(t, session.ExpiredAt(session.ExpiresAt))
}

func TestFindAttendee(t *testing.T) {
	marked := time.Now().Add(-10 * time.Minute)
	session := AttendanceSession{
		Attendees: []Attendee{
			{UserID: "std001", UserName: "Somchai", Timestamp: marked},
			{UserID: "std002", UserName: "Suda", Timestamp: time.Now()},
		},
	}

	t.Run("Found", func(t *testing.T) {
		a := session.FindAttendee("std001")
		assert.NotNil(t, a)
		assert.Equal(t, "Somchai", a.UserName)
		assert.Equal(t, marked, a.Timestamp)
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Nil(t, session.FindAttendee("std999"))
	})

	t.Run("EmptyList", func(t *testing.T) {
		empty := AttendanceSession{}
		assert.Nil(t, empty.FindAttendee("std001"))
	})
}
