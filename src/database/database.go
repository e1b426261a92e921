package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo ถือ client และ collection ทั้งหมดของระบบ
// สร้างครั้งเดียวใน main แล้วส่งต่อให้ service แต่ละตัว
type Mongo struct {
	Client *mongo.Client

	Users    *mongo.Collection
	Sessions *mongo.Collection
	Courses  *mongo.Collection
}

// Connect เชื่อมต่อกับ MongoDB และเตรียม collection + index
func Connect(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("✅ MongoDB connected successfully")

	db := client.Database(dbName)
	m := &Mongo{
		Client:   client,
		Users:    db.Collection("users"),
		Sessions: db.Collection("attendances"),
		Courses:  db.Collection("courses"),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// ensureIndexes บังคับ uniqueness ของ userId และ sessionId ที่ระดับ store
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.Sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sessionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "attendees.userId", Value: 1}}},
	})
	return err
}

// Disconnect ปิดการเชื่อมต่อตอน shutdown
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
