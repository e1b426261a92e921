package attendance

import (
	"context"
	"fmt"

	"Backend-EduTrack/src/models"

	"github.com/xuri/excelize/v2"
)

// ExportAttendees สร้างไฟล์ xlsx รายชื่อผู้เช็คชื่อของ session
// คืน bytes พร้อมชื่อไฟล์สำหรับ download
func (s *Service) ExportAttendees(ctx context.Context, sessionID string) ([]byte, string, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	f, err := buildAttendeeSheet(session)
	if err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", session.SessionID)
	return buf.Bytes(), filename, nil
}

const exportSheet = "Attendees"

// buildAttendeeSheet แปลง session เป็น worksheet — แยกออกมาให้ test ได้โดยไม่ต้องมี store
func buildAttendeeSheet(session *models.AttendanceSession) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"#", "User ID", "Name", "Checked in at"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, a := range session.Attendees {
		row := []interface{}{
			i + 1,
			a.UserID,
			a.UserName,
			a.Timestamp.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
