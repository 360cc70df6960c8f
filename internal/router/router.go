// File: internal/router/router.go
package router

import (
	"courses-api/internal/database"
	"courses-api/internal/handler/courses"
	"courses-api/internal/handler/users"
	"courses-api/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB) {
	auth := middleware.BasicAuth(db)

	// 使用者
	e.GET("/users", users.GetMyUserHandler(), auth)
	e.POST("/users", users.CreateUserHandler(db))

	// 課程
	e.GET("/courses", courses.ListCoursesHandler(db))
	e.GET("/courses/:id", courses.GetCourseHandler(db))
	e.POST("/courses", courses.CreateCourseHandler(db), auth)
	e.PUT("/courses/:id", courses.UpdateCourseHandler(db), auth)
	e.DELETE("/courses/:id", courses.DeleteCourseHandler(db), auth)
}
