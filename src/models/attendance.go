package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendee หนึ่งรายการเช็คชื่อใน session — ห้ามซ้ำต่อ userId
type Attendee struct {
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// AttendanceSession หนึ่งรอบเช็คชื่อที่ admin สร้างพร้อม QR code
type AttendanceSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID   string             `bson:"sessionId" json:"sessionId"`
	Title       string             `bson:"title" json:"title" example:"Standup"`
	Description string             `bson:"description" json:"description"`
	QRCode      string             `bson:"qrCode,omitempty" json:"qrCode,omitempty"` // base64 data URI — ตัดออกจาก list response
	QRCodeURL   string             `bson:"qrCodeUrl" json:"qrCodeUrl"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	Attendees   []Attendee         `bson:"attendees" json:"attendees"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// คำนวณตอนอ่านเสมอ ไม่เก็บลง store
	IsExpired bool `bson:"-" json:"isExpired"`
}

// ExpiredAt reports whether the session is past its expiry at the given instant.
func (s *AttendanceSession) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// FindAttendee returns the attendee entry for userID, or nil if absent.
func (s *AttendanceSession) FindAttendee(userID string) *Attendee {
	for i := range s.Attendees {
		if s.Attendees[i].UserID == userID {
			return &s.Attendees[i]
		}
	}
	return nil
}

// GenerateQRRequest payload สำหรับสร้าง session ใหม่
type GenerateQRRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	ExpiresInHours int    `json:"expiresInHours" validate:"omitempty,min=1" example:"24"`
}

// UpdateSessionRequest partial update — apply เฉพาะ field ที่ส่งมา
type UpdateSessionRequest struct {
	IsActive    *bool   `json:"isActive"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MarkAttendanceRequest payload เช็คชื่อของ student
// userId/userName เป็น fallback เมื่อ token ไม่มีข้อมูล (พฤติกรรมเดิมของ client)
type MarkAttendanceRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
}

// RecentAttendee มุมมองย่อของ attendee สำหรับ student — ชื่อ + เวลาเท่านั้น
type RecentAttendee struct {
	UserName  string    `json:"userName"`
	Timestamp time.Time `json:"timestamp"`
}

// StudentSessionView มุมมอง session สำหรับ student (privacy-filtered)
type StudentSessionView struct {
	SessionID       string           `json:"sessionId"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	IsActive        bool             `json:"isActive"`
	ExpiresAt       time.Time        `json:"expiresAt"`
	CreatedBy       string           `json:"createdBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	IsExpired       bool             `json:"isExpired"`
	TotalAttendees  int              `json:"totalAttendees"`
	RecentAttendees []RecentAttendee `json:"recentAttendees"`
}

// ActiveSessionSummary รายการ session ที่ยังเช็คชื่อได้ สำหรับ student
type ActiveSessionSummary struct {
	SessionID      string    `json:"sessionId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ExpiresAt      time.Time `json:"expiresAt"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	TotalAttendees int       `json:"totalAttendees"`
}

// AttendanceHistoryEntry หนึ่งรายการในประวัติเช็คชื่อของ student
type AttendanceHistoryEntry struct {
	SessionID          string    `json:"sessionId"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	SessionDate        time.Time `json:"sessionDate"`
	AttendanceMarkedAt time.Time `json:"attendanceMarkedAt"`
	TotalAttendees     int       `json:"totalAttendees"`
}
