package users

import (
	"net/http"

	"courses-api/internal/api"
	"courses-api/internal/database"
	"courses-api/internal/middleware"
	"courses-api/internal/model"
	"courses-api/internal/store"

	"github.com/labstack/echo/v4"
)

var createUser = store.CreateUser

// @Summary     Get the authenticated user
// @Description 回傳當前通過 Basic 驗證的使用者公開欄位，不含密碼與審計時間戳
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserEnvelope
// @Failure     401 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /users [get]
func GetMyUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
		}
		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(user)})
	}
}

// @Summary     Create a new user
// @Description 建立新帳號，欄位約束與 email 唯一性由 store 層檢查並聚合回報
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     201 "Created, Location: /"
// @Failure     400 {object} api.ValidationErrorsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		_, err := createUser(c.Request().Context(), db, &model.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			EmailAddress: req.EmailAddress,
			Password:     req.Password,
		})
		if err != nil {
			// ValidationError 由全域錯誤轉換器聚合為 400 {errors}
			return err
		}

		c.Response().Header().Set(echo.HeaderLocation, "/")
		return c.NoContent(http.StatusCreated)
	}
}
