package events

import (
	"net/http"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/notify"
	"github.com/vishnupriya759285/velookara/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 公開報名活動，不需登入
// @Summary     Register for an event
// @Description 同一活動同一電話只能報名一次；超過人數上限或活動停用時回 400
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id    path      string                    true  "活動 ID"
// @Param       body  body      api.RegisterEventRequest  true  "報名資料"
// @Success     201   {object}  api.RegistrationResponse
// @Failure     400   {object}  api.ErrorResponse  "code 為 inactive、full 或 duplicate_phone"
// @Failure     404   {object}  api.ErrorResponse
// @Router      /events/{id}/register [post]
func RegisterHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.RegisterEventRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		name := strings.TrimSpace(req.Name)
		phone := strings.TrimSpace(req.Phone)
		if name == "" || phone == "" {
			return handler.Fail(c, apperr.Invalid("Name and phone are required"))
		}
		attendees := 1
		if req.NumAttendees != nil {
			if *req.NumAttendees < 1 {
				return handler.Fail(c, apperr.Invalid("num_attendees must be at least 1"))
			}
			attendees = *req.NumAttendees
		}

		ctx := c.Request().Context()
		reg, err := registerForEvent(ctx, db, &model.Registration{
			EventID:      id,
			Name:         name,
			Phone:        phone,
			Email:        req.Email,
			Ward:         req.Ward,
			NumAttendees: attendees,
		})
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}

		// 通知只需要活動標題等資訊，讀取失敗不影響報名結果
		if event, err := getEventByID(ctx, db, id); err == nil {
			notifier.RegistrationCreated(*event, *reg)
		}

		return c.JSON(http.StatusCreated, api.RegistrationResponse{
			Success:      true,
			Message:      "Registration successful!",
			Registration: reg,
		})
	}
}

// ListRegistrationsHandler 活動報名名單，僅建立者或管理員
// @Summary     List registrations
// @Tags        events
// @Produce     json
// @Param       id   path      string  true  "活動 ID"
// @Success     200  {object}  api.RegistrationListResponse
// @Failure     401  {object}  api.ErrorResponse
// @Failure     403  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /events/{id}/registrations [get]
func ListRegistrationsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}

		ctx := c.Request().Context()
		event, err := getEventByID(ctx, db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		if !service.CanViewRegistrations(user, event) {
			return handler.Fail(c, apperr.Denied("Not authorized to view registrations for this event"))
		}

		regs, stats, err := listRegistrations(ctx, db, id)
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.RegistrationListResponse{
			Success:       true,
			Registrations: regs,
			Stats:         stats,
		})
	}
}
