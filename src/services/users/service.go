package users

import (
	"context"
	"errors"
	"time"

	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("UserId already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)

// Service จัดการบัญชีผู้ใช้ทั้ง admin และ student
type Service struct {
	users *mongo.Collection
}

func NewService(db *database.Mongo) *Service {
	return &Service{users: db.Users}
}

// HashPassword bcrypt cost 10 ตามระบบเดิม
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword เทียบ plaintext กับ hash ที่เก็บไว้
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Create สร้างผู้ใช้ใหม่ — hash รหัสผ่านที่นี่ที่เดียวร่วมกับ UpdatePassword
func (s *Service) Create(ctx context.Context, userID, password string, role models.Role) (*models.User, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// unique index ชนกรณี create พร้อมกัน
			return nil, ErrUserExists
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate ตรวจ userId + รหัสผ่าน
func (s *Service) Authenticate(ctx context.Context, userID, password string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// HasAdmin ใช้ตัดสิน bootstrap: ยังไม่มี admin = เปิด create-admin โดยไม่ต้อง auth
func (s *Service) HasAdmin(ctx context.Context) (bool, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByUserID ดึงผู้ใช้ตาม userId (ไม่ใช่ ObjectID)
func (s *Service) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListByRole ดึงผู้ใช้ทั้งหมดตาม role
func (s *Service) ListByRole(ctx context.Context, role models.Role) ([]models.PublicUser, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.User
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}

	out := make([]models.PublicUser, 0, len(all))
	for i := range all {
		out = append(out, all[i].Public())
	}
	return out, nil
}

// UpdatePassword เปลี่ยนรหัสผ่าน — hash เฉพาะตอนรหัสผ่านเปลี่ยนเท่านั้น
// update อื่น (เช่น AssignCourse) ต้องไม่แตะ field password เด็ดขาด
func (s *Service) UpdatePassword(ctx context.Context, userID, newPassword string) (*models.User, error) {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now()}}
	res, err := s.users.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByUserID(ctx, userID)
}

// AssignCourse ผูกหรือแก้คอร์สของผู้ใช้ — แตะเฉพาะ courseId
func (s *Service) AssignCourse(ctx context.Context, userID, courseID string) (*models.User, error) {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if courseID == "" {
		update["$unset"] = bson.M{"courseId": ""}
	} else {
		update["$set"].(bson.M)["courseId"] = courseID
	}

	res, err := s.users.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByUserID(ctx, userID)
}

// Delete ลบผู้ใช้ — admin ลบบัญชีตัวเองไม่ได้ (พฤติกรรมเดิม)
func (s *Service) Delete(ctx context.Context, userID, callerUserID string) (*models.User, error) {
	if userID == callerUserID {
		return nil, ErrSelfDelete
	}

	var user models.User
	err := s.users.FindOneAndDelete(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
