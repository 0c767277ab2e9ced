package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParseID 解析 path 參數中的 UUID
func ParseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.Invalid("Invalid " + name)
	}
	return id, nil
}

// ParsePage 讀取 page、limit 查詢參數，無法解析時採預設值
func ParsePage(c echo.Context, defaultLimit int) model.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return model.NewPage(page, limit, defaultLimit)
}

// QueryPtr 空字串回傳 nil
func QueryPtr(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	return &v
}

// Bind 綁定並驗證請求內容
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.Wrap(apperr.Validation, "Invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return ae
		}
		return apperr.Wrap(apperr.Validation, err.Error(), err)
	}
	return nil
}

// TrimPtr 去除前後空白，nil 原樣回傳
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// NonBlank 有出現的欄位不可為空字串
func NonBlank(fields ...*string) error {
	for _, s := range fields {
		if s != nil && strings.TrimSpace(*s) == "" {
			return apperr.Invalid("Fields cannot be empty")
		}
	}
	return nil
}
