package middleware

import (
	"errors"
	"net/http"

	"courses-api/internal/database"
	"courses-api/internal/model"
	"courses-api/internal/service"
	"courses-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

const ContextUserKey = "currentUser"

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
)

// accessDenied 缺少標頭、帳號不存在與密碼錯誤一律回傳相同結果，避免帳號列舉
func accessDenied() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
}

// BasicAuth 解析 HTTP Basic 標頭並比對資料庫中的憑證，
// 成功時將使用者放入 request-scoped context。
func BasicAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, password, ok := c.Request().BasicAuth()
			if !ok {
				return accessDenied()
			}

			user, err := getUserByEmail(c.Request().Context(), db, email)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return accessDenied()
				}
				return err
			}

			if err := authenticateUser(c.Request().Context(), *user, password); err != nil {
				return accessDenied()
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser 取出 BasicAuth 放入 context 的使用者，未經驗證的路由回傳 nil。
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
