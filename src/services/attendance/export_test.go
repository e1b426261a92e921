package attendance

import (
	"testing"
	"time"

	"Backend-EduTrack/src/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildAttendeeSheet(t *testing.T) {
	marked := time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC)
	session := &models.AttendanceSession{
		SessionID: "sess-1",
		Title:     "Morning Lecture",
		Attendees: []models.Attendee{
			{UserID: "std001", UserName: "Somchai", Timestamp: marked},
			{UserID: "std002", UserName: "Suda", Timestamp: marked.Add(5 * time.Minute)},
		},
	}

	f, err := buildAttendeeSheet(session)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header + 2 attendees

	assert.Equal(t, []string{"#", "User ID", "Name", "Checked in at"}, rows[0])
	assert.Equal(t, []string{"1", "std001", "Somchai", "2025-09-01 09:30:00"}, rows[1])
	assert.Equal(t, []string{"2", "std002", "Suda", "2025-09-01 09:35:00"}, rows[2])
}

func TestBuildAttendeeSheetEmpty(t *testing.T) {
	session := &models.AttendanceSession{SessionID: "sess-1"}

	f, err := buildAttendeeSheet(session)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	assert.NoError(t, err)
	assert.Len(t, rows, 1) // header เท่านั้น
}
