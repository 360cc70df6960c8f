package router

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"courses-api/internal/api"
	"courses-api/internal/store"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler 回傳全域錯誤轉換器，為 handler 管線唯一的轉換點：
// 欄位約束錯誤聚合為 400，echo.HTTPError 保留其狀態碼，其餘一律 500。
// debug 模式下 500 響應附帶錯誤訊息與堆疊，否則只回傳通用訊息。
func NewHTTPErrorHandler(debugMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *store.ValidationError
		if errors.As(err, &verr) {
			_ = c.JSON(http.StatusBadRequest, api.ValidationErrorsResponse{Errors: verr.Messages})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(he.Code)
				return
			}
			_ = c.JSON(he.Code, api.ErrorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		if debugMode {
			_ = c.JSON(http.StatusInternalServerError, api.ErrorResponse{
				Message: err.Error(),
				Stack:   string(debug.Stack()),
			})
			return
		}
		_ = c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
