package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/jobs"
	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/qrcode"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrTitleRequired   = errors.New("Title is required")
	ErrNotFound        = errors.New("Attendance session not found")
	ErrSessionInactive = errors.New("This attendance session is inactive")
	ErrSessionExpired  = errors.New("This attendance session has expired")
)

// AlreadyMarkedError การเช็คชื่อซ้ำ — พก timestamp ของครั้งแรกกลับไปด้วย
type AlreadyMarkedError struct {
	MarkedAt time.Time
}

func (e *AlreadyMarkedError) Error() string {
	return "You have already marked attendance for this session"
}

const defaultExpiresInHours = 24

// Service จัดการ lifecycle ของ attendance session: สร้าง QR, เช็คชื่อ, หมดอายุ
type Service struct {
	sessions    *mongo.Collection
	asynqClient *asynq.Client // nil ได้ถ้าไม่มี Redis
	frontendURL string
	uploadDir   string
}

func NewService(db *database.Mongo, asynqClient *asynq.Client, frontendURL, uploadDir string) *Service {
	return &Service{
		sessions:    db.Sessions,
		asynqClient: asynqClient,
		frontendURL: frontendURL,
		uploadDir:   uploadDir,
	}
}

// Create สร้าง session ใหม่พร้อมเรนเดอร์ QR code ลง uploads/
func (s *Service) Create(ctx context.Context, title, description string, expiresInHours int, createdBy string) (*models.AttendanceSession, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if expiresInHours <= 0 {
		expiresInHours = defaultExpiresInHours
	}

	sessionID := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(time.Duration(expiresInHours) * time.Hour)

	payload := qrcode.BuildPayload(sessionID, s.frontendURL)
	dataURI, fileURL, err := qrcode.Generate(payload, s.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	session := models.AttendanceSession{
		SessionID:   sessionID,
		Title:       title,
		Description: description,
		QRCode:      dataURI,
		QRCodeURL:   fileURL,
		IsActive:    true,
		CreatedBy:   createdBy,
		Attendees:   []models.Attendee{},
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.sessions.InsertOne(ctx, session); err != nil {
		return nil, err
	}

	s.scheduleCleanup(sessionID, expiresAt)

	session.IsExpired = session.ExpiredAt(now)
	return &session, nil
}

// scheduleCleanup ตั้งงานลบไฟล์ QR ตอน session หมดอายุ — best effort
func (s *Service) scheduleCleanup(sessionID string, expiresAt time.Time) {
	if s.asynqClient == nil {
		return
	}
	task, err := jobs.NewCleanupArtifactTask(sessionID)
	if err != nil {
		return
	}
	if _, err := s.asynqClient.Enqueue(task, asynq.ProcessAt(expiresAt)); err != nil {
		log.Println("⚠️ Failed to schedule QR cleanup:", err)
	}
}

// List ดึง session ทั้งหมด (admin) — ใหม่สุดก่อน, ตัด qrCode ออกเพื่อลดขนาด response
func (s *Service) List(ctx context.Context, isActive *bool, p models.PaginationParams) ([]models.AttendanceSession, models.Pagination, error) {
	filter := bson.M{}
	if isActive != nil {
		filter["isActive"] = *isActive
	}

	total, err := s.sessions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetProjection(bson.M{"qrCode": 0})

	cursor, err := s.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	defer cursor.Close(ctx)

	var sessions []models.AttendanceSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, models.Pagination{}, err
	}

	now := time.Now()
	for i := range sessions {
		sessions[i].IsExpired = sessions[i].ExpiredAt(now)
	}

	return sessions, models.NewPagination(total, p), nil
}

// Get ดึง session เดียวพร้อม isExpired ที่คำนวณสดทุกครั้ง
func (s *Service) Get(ctx context.Context, sessionID string) (*models.AttendanceSession, error) {
	var session models.AttendanceSession
	err := s.sessions.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	session.IsExpired = session.ExpiredAt(time.Now())
	return &session, nil
}

// Update แก้เฉพาะ field ที่ส่งมา — ไม่แตะ expiry
func (s *Service) Update(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.AttendanceSession, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.Title != nil && *req.Title != "" {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"qrCode": 0})

	var session models.AttendanceSession
	err := s.sessions.FindOneAndUpdate(ctx, bson.M{"sessionId": sessionID}, bson.M{"$set": set}, opts).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	session.IsExpired = session.ExpiredAt(time.Now())
	return &session, nil
}

// Delete ลบ session และไฟล์ QR — ไฟล์ลบพลาดแค่ log ไม่ fail
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	res, err := s.sessions.DeleteOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	if err := qrcode.RemoveFile(s.uploadDir, sessionID); err != nil {
		log.Println("⚠️ Failed to delete QR code file:", err)
	}
	return nil
}

// CheckInResult ผลการเช็คชื่อสำเร็จ
type CheckInResult struct {
	SessionID      string    `json:"sessionId"`
	Title          string    `json:"title"`
	MarkedAt       time.Time `json:"markedAt"`
	TotalAttendees int       `json:"totalAttendees"`
}

// CheckIn เช็คชื่อแบบ atomic: เงื่อนไขทั้งหมด (active, ยังไม่หมดอายุ,
// ยังไม่เคยเช็ค) อยู่ใน filter ของ update เดียว ให้ store ตัดสินเองฝั่ง server
// สอง request พร้อมกันจาก user เดียวกันจึงสำเร็จได้แค่ครั้งเดียว
func (s *Service) CheckIn(ctx context.Context, sessionID, userID, userName string) (*CheckInResult, error) {
	if userName == "" {
		userName = userID
	}
	now := time.Now()
	attendee := models.Attendee{
		UserID:    userID,
		UserName:  userName,
		Timestamp: now,
	}

	filter := bson.M{
		"sessionId":        sessionID,
		"isActive":         true,
		"expiresAt":        bson.M{"$gt": now},
		"attendees.userId": bson.M{"$ne": userID},
	}
	update := bson.M{
		"$push": bson.M{"attendees": attendee},
		"$set":  bson.M{"updatedAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"qrCode": 0})

	var updated models.AttendanceSession
	err := s.sessions.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &CheckInResult{
			SessionID:      updated.SessionID,
			Title:          updated.Title,
			MarkedAt:       now,
			TotalAttendees: len(updated.Attendees),
		}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// update ไม่ match — อ่านอีกครั้งเดียวเพื่อแยกสาเหตุ
	var session models.AttendanceSession
	err = s.sessions.FindOne(ctx, bson.M{"sessionId": sessionID},
		options.FindOne().SetProjection(bson.M{"qrCode": 0})).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return nil, classifyCheckInFailure(&session, userID, time.Now())
}

// classifyCheckInFailure แยกสาเหตุที่ conditional update ไม่ match
// ลำดับการตรวจตรงกับพฤติกรรมเดิม: inactive → expired → เช็คซ้ำ
func classifyCheckInFailure(session *models.AttendanceSession, userID string, now time.Time) error {
	if !session.IsActive {
		return ErrSessionInactive
	}
	if !session.ExpiresAt.After(now) {
		return ErrSessionExpired
	}
	if existing := session.FindAttendee(userID); existing != nil {
		return &AlreadyMarkedError{MarkedAt: existing.Timestamp}
	}
	// อ่านแล้วผ่านทุกเงื่อนไขแต่ update ไม่ match — สถานะเปลี่ยนระหว่างสองจังหวะ
	return errors.New("Failed to mark attendance")
}

// MyHistory ประวัติเช็คชื่อของ user — เรียง session ใหม่สุดก่อน
func (s *Service) MyHistory(ctx context.Context, userID string, p models.PaginationParams) ([]models.AttendanceHistoryEntry, models.Pagination, error) {
	filter := bson.M{"attendees.userId": userID}

	total, err := s.sessions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetProjection(bson.M{"qrCode": 0})

	cursor, err := s.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	defer cursor.Close(ctx)

	var sessions []models.AttendanceSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, models.Pagination{}, err
	}

	history := make([]models.AttendanceHistoryEntry, 0, len(sessions))
	for i := range sessions {
		mine := sessions[i].FindAttendee(userID)
		if mine == nil {
			continue
		}
		history = append(history, models.AttendanceHistoryEntry{
			SessionID:          sessions[i].SessionID,
			Title:              sessions[i].Title,
			Description:        sessions[i].Description,
			SessionDate:        sessions[i].CreatedAt,
			AttendanceMarkedAt: mine.Timestamp,
			TotalAttendees:     len(sessions[i].Attendees),
		})
	}

	return history, models.NewPagination(total, p), nil
}

// ActiveSessions session ที่ student ยังเช็คชื่อได้: active และยังไม่หมดอายุ
func (s *Service) ActiveSessions(ctx context.Context, p models.PaginationParams) ([]models.ActiveSessionSummary, models.Pagination, error) {
	filter := bson.M{
		"isActive":  true,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	total, err := s.sessions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit)).
		SetProjection(bson.M{"qrCode": 0})

	cursor, err := s.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	defer cursor.Close(ctx)

	var sessions []models.AttendanceSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, models.Pagination{}, err
	}

	out := make([]models.ActiveSessionSummary, 0, len(sessions))
	for i := range sessions {
		out = append(out, models.ActiveSessionSummary{
			SessionID:      sessions[i].SessionID,
			Title:          sessions[i].Title,
			Description:    sessions[i].Description,
			ExpiresAt:      sessions[i].ExpiresAt,
			CreatedBy:      sessions[i].CreatedBy,
			CreatedAt:      sessions[i].CreatedAt,
			TotalAttendees: len(sessions[i].Attendees),
		})
	}

	return out, models.NewPagination(total, p), nil
}

// GetForStudent มุมมอง session สำหรับ student — ไม่เปิดเผยรายชื่อ attendee เต็ม
func (s *Service) GetForStudent(ctx context.Context, sessionID string) (*models.StudentSessionView, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.StudentSessionView{
		SessionID:       session.SessionID,
		Title:           session.Title,
		Description:     session.Description,
		IsActive:        session.IsActive,
		ExpiresAt:       session.ExpiresAt,
		CreatedBy:       session.CreatedBy,
		CreatedAt:       session.CreatedAt,
		IsExpired:       session.IsExpired,
		TotalAttendees:  len(session.Attendees),
		RecentAttendees: recentAttendees(session.Attendees, 5),
	}, nil
}

// recentAttendees ตัดเหลือ n รายการล่าสุด เหลือแค่ชื่อ + เวลา (privacy policy)
func recentAttendees(attendees []models.Attendee, n int) []models.RecentAttendee {
	start := len(attendees) - n
	if start < 0 {
		start = 0
	}

	out := make([]models.RecentAttendee, 0, len(attendees)-start)
	for _, a := range attendees[start:] {
		out = append(out, models.RecentAttendee{
			UserName:  a.UserName,
			Timestamp: a.Timestamp,
		})
	}
	return out
}
