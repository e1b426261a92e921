package attendance

import (
	"errors"
	"testing"
	"time"

	"Backend-EduTrack/src/models"

	"github.com/stretchr/testify/assert"
)

func activeSession(now time.Time, attendees ...models.Attendee) *models.AttendanceSession {
	return &models.AttendanceSession{
		SessionID: "sess-1",
		Title:     "Morning Lecture",
		IsActive:  true,
		ExpiresAt: now.Add(1 * time.Hour),
		Attendees: attendees,
	}
}

func TestClassifyCheckInFailure(t *testing.T) {
	now := time.Now()

	t.Run("InactiveBeatsExpired", func(t *testing.T) {
		// session ปิดและหมดอายุพร้อมกัน — รายงาน inactive ก่อนเสมอ
		s := activeSession(now)
		s.IsActive = false
		s.ExpiresAt = now.Add(-1 * time.Hour)

		err := classifyCheckInFailure(s, "std001", now)
		assert.ErrorIs(t, err, ErrSessionInactive)
	})

	t.Run("Expired", func(t *testing.T) {
		s := activeSession(now)
		s.ExpiresAt = now.Add(-1 * time.Minute)

		err := classifyCheckInFailure(s, "std001", now)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("ExpiredExactlyAtBoundary", func(t *testing.T) {
		s := activeSession(now)
		s.ExpiresAt = now

		err := classifyCheckInFailure(s, "std001", now)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("AlreadyMarkedCarriesTimestamp", func(t *testing.T) {
		marked := now.Add(-30 * time.Minute)
		s := activeSession(now, models.Attendee{UserID: "std001", UserName: "Somchai", Timestamp: marked})

		err := classifyCheckInFailure(s, "std001", now)

		var already *AlreadyMarkedError
		assert.True(t, errors.As(err, &already))
		assert.Equal(t, marked, already.MarkedAt)
	})

	t.Run("OtherAttendeesDoNotBlock", func(t *testing.T) {
		// มีคนอื่นเช็คแล้วแต่ user นี้ยังไม่เช็ค — ไม่ใช่ already marked
		s := activeSession(now, models.Attendee{UserID: "std002"})

		err := classifyCheckInFailure(s, "std001", now)

		var already *AlreadyMarkedError
		assert.False(t, errors.As(err, &already))
	})
}

func TestRecentAttendees(t *testing.T) {
	mk := func(n int) []models.Attendee {
		out := make([]models.Attendee, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, models.Attendee{
				UserID:    "std" + string(rune('0'+i)),
				UserName:  "User " + string(rune('0'+i)),
				Timestamp: time.Now(),
			})
		}
		return out
	}

	t.Run("TruncatesToLastN", func(t *testing.T) {
		recent := recentAttendees(mk(8), 5)
		assert.Len(t, recent, 5)
		// ต้องเป็น 5 รายการท้ายสุดตามลำดับเดิม
		assert.Equal(t, "User 3", recent[0].UserName)
		assert.Equal(t, "User 7", recent[4].UserName)
	})

	t.Run("FewerThanN", func(t *testing.T) {
		recent := recentAttendees(mk(2), 5)
		assert.Len(t, recent, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, recentAttendees(nil, 5))
	})
}
