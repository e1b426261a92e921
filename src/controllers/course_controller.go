package controllers

import (
	"io"

	"Backend-EduTrack/src/models"
	"Backend-EduTrack/src/services/courses"
	"Backend-EduTrack/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseController endpoint จัดการคอร์ส (lecture / assignment / note)
type CourseController struct {
	courses *courses.Service
}

func NewCourseController(svc *courses.Service) *CourseController {
	return &CourseController{courses: svc}
}

func courseIDFromParams(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params(name))
}

// CreateCourse godoc
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CourseRequest true "Course details"
// @Success      201  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /admin/create-course [post]
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req models.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title is required")
	}

	course, err := ctl.courses.Create(c.Context(), req.Title, req.Description)
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to create course", err)
	}
	return utils.HandleSuccess(c, fiber.StatusCreated, "Course created successfully", course)
}

// ListCourses godoc
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /admin/courses [get]
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	list, err := ctl.courses.List(c.Context())
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch courses", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Courses retrieved successfully", list)
}

// GetCourse godoc
// @Summary      Get one course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/course/{id} [get]
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := courseIDFromParams(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	course, err := ctl.courses.Get(c.Context(), id)
	if err != nil {
		if err == courses.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to fetch course", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Course retrieved successfully", course)
}

// UpdateCourse godoc
// @Summary      Update course title/description
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        body body models.CourseRequest true "Course details"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/course/{id} [put]
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := courseIDFromParams(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req models.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title is required")
	}

	course, err := ctl.courses.Update(c.Context(), id, req.Title, req.Description)
	if err != nil {
		if err == courses.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to update course", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Course updated successfully", course)
}

// DeleteCourse godoc
// @Summary      Delete a course and its uploaded files
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /admin/course/{id} [delete]
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := courseIDFromParams(c, "id")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	if err := ctl.courses.Delete(c.Context(), id); err != nil {
		if err == courses.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		}
		return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete course", err)
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Course deleted successfully", nil)
}

// addItem อ่าน multipart form แล้วส่งต่อให้ service อัปโหลด
func (ctl *CourseController) addItem(c *fiber.Ctx, field string) error {
	courseID, err := courseIDFromParams(c, "courseId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	title := c.FormValue("title")
	if title == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Title is required")
	}
	description := c.FormValue("description")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "File is required")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return utils.HandleErrorWithDetail(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	course, err := ctl.courses.AddItem(c.Context(), courseID, field, title, description, data, fileHeader.Filename)
	if err != nil {
		switch err {
		case courses.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		case courses.ErrStorageUnconfigured:
			return utils.HandleError(c, fiber.StatusInternalServerError, "File storage is not configured")
		default:
			return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to upload file", err)
		}
	}
	return utils.HandleSuccess(c, fiber.StatusCreated, "File uploaded successfully", course)
}

func (ctl *CourseController) deleteItem(c *fiber.Ctx, field, paramName string) error {
	courseID, err := courseIDFromParams(c, "courseId")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	itemID, err := courseIDFromParams(c, paramName)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	if err := ctl.courses.DeleteItem(c.Context(), courseID, field, itemID); err != nil {
		switch err {
		case courses.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		case courses.ErrItemNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Item not found")
		default:
			return utils.HandleErrorWithDetail(c, fiber.StatusInternalServerError, "Failed to delete item", err)
		}
	}
	return utils.HandleSuccess(c, fiber.StatusOK, "Item deleted successfully", nil)
}

// AddLecture godoc
// @Summary      Attach a lecture file to a course
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        title formData string true "Lecture title"
// @Param        description formData string false "Lecture description"
// @Param        file formData file true "Lecture file"
// @Success      201  {object}  models.Response
// @Router       /admin/addLecture/{courseId} [post]
func (ctl *CourseController) AddLecture(c *fiber.Ctx) error {
	return ctl.addItem(c, courses.FieldLectures)
}

// AddAssignment godoc
// @Summary      Attach an assignment file to a course
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        title formData string true "Assignment title"
// @Param        description formData string false "Assignment description"
// @Param        file formData file true "Assignment file"
// @Success      201  {object}  models.Response
// @Router       /admin/addAssignments/{courseId} [post]
func (ctl *CourseController) AddAssignment(c *fiber.Ctx) error {
	return ctl.addItem(c, courses.FieldAssignments)
}

// AddNote godoc
// @Summary      Attach a note file to a course
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        title formData string true "Note title"
// @Param        description formData string false "Note description"
// @Param        file formData file true "Note file"
// @Success      201  {object}  models.Response
// @Router       /admin/addNotes/{courseId} [post]
func (ctl *CourseController) AddNote(c *fiber.Ctx) error {
	return ctl.addItem(c, courses.FieldNotes)
}

// DeleteLecture godoc
// @Summary      Remove a lecture from a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        lectureId path string true "Lecture ID"
// @Success      200  {object}  models.Response
// @Router       /admin/deleteLecture/{courseId}/{lectureId} [delete]
func (ctl *CourseController) DeleteLecture(c *fiber.Ctx) error {
	return ctl.deleteItem(c, courses.FieldLectures, "lectureId")
}

// DeleteAssignment godoc
// @Summary      Remove an assignment from a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        assignmentId path string true "Assignment ID"
// @Success      200  {object}  models.Response
// @Router       /admin/deleteAssignment/{courseId}/{assignmentId} [delete]
func (ctl *CourseController) DeleteAssignment(c *fiber.Ctx) error {
	return ctl.deleteItem(c, courses.FieldAssignments, "assignmentId")
}

// DeleteNote godoc
// @Summary      Remove a note from a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Param        noteId path string true "Note ID"
// @Success      200  {object}  models.Response
// @Router       /admin/deleteNote/{courseId}/{noteId} [delete]
func (ctl *CourseController) DeleteNote(c *fiber.Ctx) error {
	return ctl.deleteItem(c, courses.FieldNotes, "noteId")
}
