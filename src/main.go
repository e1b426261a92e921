package main

import (
	_ "Backend-EduTrack/docs"
	"Backend-EduTrack/src/cloudinary"
	"Backend-EduTrack/src/config"
	"Backend-EduTrack/src/controllers"
	"Backend-EduTrack/src/database"
	"Backend-EduTrack/src/jobs"
	"Backend-EduTrack/src/middleware"
	"Backend-EduTrack/src/routes"
	"Backend-EduTrack/src/services/attendance"
	"Backend-EduTrack/src/services/courses"
	"Backend-EduTrack/src/services/users"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title           EduTrack API
// @version         1.0
// @description     Attendance and course management backend
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {

	cfg := config.Load()

	// เชื่อมต่อกับ MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("❌ Error connecting to the database: %v", err)
	}

	// Redis ใช้สำหรับ rate limit + token blacklist (ไม่มีก็รันได้)
	rdb := database.NewRedis(cfg.RedisURI)
	asynqClient := database.NewAsynqClient(cfg.RedisURI)
	cld := cloudinary.New(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)

	userService := users.NewService(db)
	attendanceService := attendance.NewService(db, asynqClient, cfg.FrontendURL, cfg.UploadDir)
	courseService := courses.NewService(db, cld)

	ctl := routes.Controllers{
		Auth:       controllers.NewAuthController(userService, rdb),
		User:       controllers.NewUserController(userService),
		Attendance: controllers.NewAttendanceController(attendanceService),
		Student:    controllers.NewStudentController(attendanceService, courseService),
		Course:     controllers.NewCourseController(courseService),
	}
	mw := middleware.New(db, rdb)

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.AllowedOrigins != "*", // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// ไฟล์ QR ที่ generate แล้ว เสิร์ฟเป็น static
	app.Static("/uploads", cfg.UploadDir)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, ctl, mw)

	// worker เก็บกวาดไฟล์ QR ของ session ที่หมดอายุ
	if cfg.RedisURI != "" {
		go jobs.RunWorker(cfg.RedisURI, db, cfg.UploadDir)
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
