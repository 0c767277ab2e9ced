package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/labstack/echo/v4"
)

// Translate 將 store 錯誤轉為 apperr，notFound 為找不到資源時的訊息
func Translate(err error, notFound string) *apperr.Error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.Wrap(apperr.NotFound, notFound, err)
	case errors.Is(err, store.ErrDuplicateEmail):
		return apperr.Wrap(apperr.Conflict, "Email already exists", err).WithCode(apperr.CodeDuplicateEmail)
	case errors.Is(err, store.ErrDuplicatePhone):
		return apperr.Wrap(apperr.Conflict, "This phone number is already registered for this event", err).WithCode(apperr.CodeDuplicatePhone)
	case errors.Is(err, store.ErrEventFull):
		return apperr.Wrap(apperr.Conflict, "Event is full", err).WithCode(apperr.CodeEventFull)
	case errors.Is(err, store.ErrEventInactive):
		return apperr.Wrap(apperr.Conflict, "Event is not active", err).WithCode(apperr.CodeEventInactive)
	case errors.Is(err, store.ErrInvalidReference):
		return apperr.Wrap(apperr.Validation, "Referenced user does not exist", err)
	case errors.Is(err, store.ErrInvalidDates):
		return apperr.Wrap(apperr.Validation, "Event end date must be after the start date", err)
	}
	return apperr.From(err)
}

// Fail 輸出統一的錯誤格式並回傳 nil。
// Internal 錯誤的原因只在 echo Debug 模式下帶出。
func Fail(c echo.Context, err error) error {
	e := Translate(err, "Resource not found")
	resp := api.ErrorResponse{Success: false, Message: e.Message, Code: e.Code}
	if e.Kind == apperr.Internal {
		slog.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		if c.Echo().Debug && e.Err != nil {
			resp.Error = e.Err.Error()
		}
	}
	return c.JSON(e.Kind.Status(), resp)
}

// OK 以 200 輸出
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// ErrorHandler 取代 echo 預設錯誤處理，middleware 回傳的錯誤也走同一格式
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			switch {
			case he.Code == http.StatusNotFound:
				msg = "Route not found"
			case he.Internal == nil:
				if m, ok := he.Message.(string); ok {
					msg = m
				}
			}
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(he.Code)
				return
			}
			_ = c.JSON(he.Code, api.ErrorResponse{Success: false, Message: msg})
			return
		}
		_ = Fail(c, err)
	}
}
