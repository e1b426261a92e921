package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseFile ไฟล์ที่อัปโหลดไป Cloudinary แล้ว
type CourseFile struct {
	PublicID  string `bson:"public_id" json:"public_id"`
	SecureURL string `bson:"secure_url" json:"secure_url"`
}

// CourseItem sub-entry ของคอร์ส (lecture / assignment / note)
// ได้ _id จาก store ตอน append เพื่อให้ลบรายตัวได้
type CourseItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	File        CourseFile         `bson:"file" json:"file"`
}

// Course เอกสารคอร์สพร้อม sub-list ฝังในตัว
type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" example:"Introduction to Programming"`
	Description string             `bson:"description" json:"description"`
	Lectures    []CourseItem       `bson:"lectures" json:"lectures"`
	Assignments []CourseItem       `bson:"assignments" json:"assignments"`
	Notes       []CourseItem       `bson:"notes" json:"notes"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CourseRequest payload สำหรับ create/update คอร์ส
type CourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}
