package courses

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-EduTrack/src/cloudinary"
	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound            = errors.New("Course not found")
	ErrItemNotFound        = errors.New("Course item not found")
	ErrNoCourse            = errors.New("No course registered for this student")
	ErrStorageUnconfigured = errors.New("file storage is not configured")
)

// ฟิลด์ sub-list ของ Course — controller ส่งค่าพวกนี้เข้ามาเท่านั้น
const (
	FieldLectures    = "lectures"
	FieldAssignments = "assignments"
	FieldNotes       = "notes"
)

// Service CRUD ของคอร์ส + sub-entry ที่ผูกไฟล์บน Cloudinary
type Service struct {
	courses *mongo.Collection
	users   *mongo.Collection
	cld     *cloudinary.Client // nil ถ้าไม่ได้ตั้งค่า credentials
}

func NewService(db *database.Mongo, cld *cloudinary.Client) *Service {
	return &Service{courses: db.Courses, users: db.Users, cld: cld}
}

// Create สร้างคอร์สใหม่พร้อม sub-list ว่าง
func (s *Service) Create(ctx context.Context, title, description string) (*models.Course, error) {
	now := time.Now()
	course := models.Course{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Lectures:    []models.CourseItem{},
		Assignments: []models.CourseItem{},
		Notes:       []models.CourseItem{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.courses.InsertOne(ctx, course); err != nil {
		return nil, err
	}
	return &course, nil
}

// List ดึงคอร์สทั้งหมด
func (s *Service) List(ctx context.Context) ([]models.Course, error) {
	cursor, err := s.courses.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Get ดึงคอร์สตาม ID
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := s.courses.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// Update แก้ title/description ของคอร์ส
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, title, description string) (*models.Course, error) {
	update := bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now(),
	}}

	res, err := s.courses.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete ลบคอร์ส ลบไฟล์บน Cloudinary แบบ best-effort
// และล้าง courseId ของ user ที่อ้างคอร์สนี้ (weak reference ไม่ cascade)
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	var course models.Course
	err := s.courses.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}

	s.destroyFiles(course.Lectures)
	s.destroyFiles(course.Assignments)
	s.destroyFiles(course.Notes)

	if _, err := s.users.UpdateMany(ctx,
		bson.M{"courseId": id.Hex()},
		bson.M{"$unset": bson.M{"courseId": ""}},
	); err != nil {
		log.Println("⚠️ Failed to unassign deleted course from users:", err)
	}
	return nil
}

func (s *Service) destroyFiles(items []models.CourseItem) {
	if s.cld == nil {
		return
	}
	for _, item := range items {
		if item.File.PublicID == "" {
			continue
		}
		if err := s.cld.Destroy(item.File.PublicID); err != nil {
			log.Println("⚠️ Failed to destroy course file:", err)
		}
	}
}

// AddItem อัปโหลดไฟล์แล้ว append sub-entry พร้อม _id ที่ generate ให้
// field ต้องเป็นหนึ่งใน FieldLectures / FieldAssignments / FieldNotes
func (s *Service) AddItem(ctx context.Context, courseID primitive.ObjectID, field, title, description string, fileData []byte, filename string) (*models.Course, error) {
	if s.cld == nil {
		return nil, ErrStorageUnconfigured
	}

	uploaded, err := s.cld.UploadBytes(fileData, filename)
	if err != nil {
		return nil, err
	}

	item := models.CourseItem{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		File: models.CourseFile{
			PublicID:  uploaded.PublicID,
			SecureURL: uploaded.SecureURL,
		},
	}

	update := bson.M{
		"$push": bson.M{field: item},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := s.courses.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		// คอร์สหาย — เก็บกวาดไฟล์ที่เพิ่งอัปโหลด
		if derr := s.cld.Destroy(uploaded.PublicID); derr != nil {
			log.Println("⚠️ Failed to destroy orphaned upload:", derr)
		}
		return nil, ErrNotFound
	}
	return s.Get(ctx, courseID)
}

// DeleteItem ลบ sub-entry ตาม id และลบไฟล์บน Cloudinary แบบ best-effort
func (s *Service) DeleteItem(ctx context.Context, courseID primitive.ObjectID, field string, itemID primitive.ObjectID) error {
	course, err := s.Get(ctx, courseID)
	if err != nil {
		return err
	}

	var publicID string
	var items []models.CourseItem
	switch field {
	case FieldLectures:
		items = course.Lectures
	case FieldAssignments:
		items = course.Assignments
	case FieldNotes:
		items = course.Notes
	}
	for _, item := range items {
		if item.ID == itemID {
			publicID = item.File.PublicID
			break
		}
	}

	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := s.courses.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrItemNotFound
	}

	if publicID != "" && s.cld != nil {
		if err := s.cld.Destroy(publicID); err != nil {
			log.Println("⚠️ Failed to destroy course file:", err)
		}
	}
	return nil
}

// MyCourse คอร์สของ student ที่ login อยู่ — resolve ผ่าน courseId บน user
func (s *Service) MyCourse(ctx context.Context, userID string) (*models.Course, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil || user.CourseID == "" {
		return nil, ErrNoCourse
	}

	courseID, err := primitive.ObjectIDFromHex(user.CourseID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Get(ctx, courseID)
}
