package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/qrcode"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Worker ประมวลผลงานตามเวลาของระบบเช็คชื่อ
type Worker struct {
	db        *database.Mongo
	uploadDir string
}

func NewWorker(db *database.Mongo, uploadDir string) *Worker {
	return &Worker{db: db, uploadDir: uploadDir}
}

// HandleCleanupArtifact ลบไฟล์ QR ของ session ที่หมดอายุแล้ว
// ตัว session record และ isActive ไม่ถูกแตะ — QR ที่หมดอายุแค่ scan ไม่ได้แล้ว
func (w *Worker) HandleCleanupArtifact(ctx context.Context, t *asynq.Task) error {
	var payload CleanupArtifactPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	var session models.AttendanceSession
	err := w.db.Sessions.FindOne(ctx, bson.M{"sessionId": payload.SessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// session ถูกลบไปก่อนแล้ว — เก็บกวาดไฟล์เผื่อค้างอยู่
			_ = qrcode.RemoveFile(w.uploadDir, payload.SessionID)
			return nil
		}
		return err
	}

	if !session.ExpiredAt(time.Now()) {
		// ยังไม่หมดอายุจริง (นาฬิกาเพี้ยน/งานมาก่อนเวลา) — ข้าม
		return nil
	}

	if err := qrcode.RemoveFile(w.uploadDir, payload.SessionID); err != nil {
		log.Println("⚠️ Failed to remove QR artifact:", err)
		return err
	}

	log.Println("✅ QR artifact cleaned up for expired session:", payload.SessionID)
	return nil
}

// RunWorker เปิด asynq server สำหรับ consume งาน — เรียกเป็น goroutine จาก main
func RunWorker(redisURI string, db *database.Mongo, uploadDir string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	worker := NewWorker(db, uploadDir)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupArtifact, worker.HandleCleanupArtifact)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
