package courses

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"courses-api/internal/api"
	"courses-api/internal/database"
	"courses-api/internal/middleware"
	"courses-api/internal/model"
	"courses-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listCourses   = store.ListCourses
	getCourseByID = store.GetCourseByID
	createCourse  = store.CreateCourse
	updateCourse  = store.UpdateCourse
	deleteCourse  = store.DeleteCourse
)

// loadCourse 以路徑參數載入課程，非數字或不存在的 ID 一律回報 404。
func loadCourse(c echo.Context, db database.DB, message string) (*model.Course, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, message)
	}
	course, err := getCourseByID(c.Request().Context(), db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, echo.NewHTTPError(http.StatusNotFound, message)
		}
		return nil, err
	}
	return course, nil
}

// @Summary     List all courses
// @Description 回傳所有課程及其擁有者公開欄位，集合為空時回傳空清單
// @Tags        courses
// @Produce     json
// @Success     200 {object} api.CoursesEnvelope
// @Failure     500 {object} api.ErrorResponse
// @Router      /courses [get]
func ListCoursesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		courses, err := listCourses(c.Request().Context(), db)
		if err != nil {
			return err
		}
		resp := api.CoursesEnvelope{Courses: make([]api.CourseResponse, 0, len(courses))}
		for i := range courses {
			resp.Courses = append(resp.Courses, api.NewCourseResponse(&courses[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a course by ID
// @Description 回傳單一課程及其擁有者公開欄位
// @Tags        courses
// @Produce     json
// @Param       id path int true "課程 ID"
// @Success     200 {object} api.CourseEnvelope
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /courses/{id} [get]
func GetCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		course, err := loadCourse(c, db, "Sorry, a course matching that ID was not found")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.CourseEnvelope{Course: api.NewCourseResponse(course)})
	}
}

// @Summary     Create a new course
// @Description 建立課程，擁有者一律為通過驗證的使用者，欄位約束由 store 層檢查
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       course body api.CreateCourseRequest true "課程資料"
// @Success     201 "Created, Location: /courses/{id}"
// @Failure     400 {object} api.ValidationErrorsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /courses [post]
func CreateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
		}

		var req api.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		course, err := createCourse(c.Request().Context(), db, &model.Course{
			Title:           req.Title,
			Description:     req.Description,
			EstimatedTime:   req.EstimatedTime,
			MaterialsNeeded: req.MaterialsNeeded,
			UserID:          user.ID,
		})
		if err != nil {
			return err
		}

		c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/courses/%d", course.ID))
		return c.NoContent(http.StatusCreated)
	}
}

// @Summary     Update a course
// @Description 僅擁有者可更新。檢查順序固定：課程存在 → 擁有權 → 欄位檢查 → 寫入
// @Tags        courses
// @Accept      json
// @Param       id     path int                     true "課程 ID"
// @Param       course body api.UpdateCourseRequest true "課程資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ValidationErrorsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 "Forbidden"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /courses/{id} [put]
func UpdateCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
		}

		course, err := loadCourse(c, db, "A course matching that ID was not found")
		if err != nil {
			return err
		}

		if course.UserID != user.ID {
			return c.NoContent(http.StatusForbidden)
		}

		var req api.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		// handler 層的必填檢查，與 store 層的宣告式檢查並存，訊息不同
		var msgs []string
		if req.Title == nil || *req.Title == "" {
			msgs = append(msgs, "Please provide a title to update")
		}
		if req.Description == nil || *req.Description == "" {
			msgs = append(msgs, "Please provide a description to update")
		}
		if len(msgs) > 0 {
			return &store.ValidationError{Messages: msgs}
		}

		course.Title = *req.Title
		course.Description = *req.Description
		if req.EstimatedTime != nil {
			course.EstimatedTime = req.EstimatedTime
		}
		if req.MaterialsNeeded != nil {
			course.MaterialsNeeded = req.MaterialsNeeded
		}

		if err := updateCourse(c.Request().Context(), db, course); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a course
// @Description 僅擁有者可刪除。檢查順序固定：課程存在 → 擁有權 → 刪除
// @Tags        courses
// @Param       id path int true "課程 ID"
// @Success     204 "No Content"
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 "Forbidden"
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /courses/{id} [delete]
func DeleteCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
		}

		course, err := loadCourse(c, db, "A course matching that ID was not found")
		if err != nil {
			return err
		}

		if course.UserID != user.ID {
			return c.NoContent(http.StatusForbidden)
		}

		if err := deleteCourse(c.Request().Context(), db, course.ID); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
