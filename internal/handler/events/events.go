// Package events 處理活動與公開報名
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
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 20
	notFoundMsg  = "Event not found"
)

// 方便測試替換
var (
	createEvent       = store.CreateEvent
	getEventByID      = store.GetEventByID
	listEvents        = store.ListEvents
	updateEvent       = store.UpdateEvent
	deleteEvent       = store.DeleteEvent
	registerForEvent  = store.RegisterForEvent
	listRegistrations = store.ListRegistrations
)

// CreateEventHandler 建立活動，任何登入者皆可
// @Summary     Create an event
// @Description 建立活動，category 預設 general，max_participants 省略表示不限人數
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       body  body      api.CreateEventRequest  true  "活動內容"
// @Success     201   {object}  api.EventResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     401   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /events [post]
func CreateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		var req api.CreateEventRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		title := strings.TrimSpace(req.Title)
		description := strings.TrimSpace(req.Description)
		venue := strings.TrimSpace(req.Venue)
		district := strings.TrimSpace(req.District)
		panchayat := strings.TrimSpace(req.Panchayat)
		if title == "" || description == "" || venue == "" || district == "" || panchayat == "" {
			return handler.Fail(c, apperr.Invalid("Title, description, venue, district and panchayat are required"))
		}
		if req.EventEndDate != nil && req.EventEndDate.Before(req.EventDate) {
			return handler.Fail(c, store.ErrInvalidDates)
		}

		event, err := createEvent(c.Request().Context(), db, &model.Event{
			Title:           title,
			Description:     description,
			EventDate:       req.EventDate,
			EventEndDate:    req.EventEndDate,
			Venue:           venue,
			District:        district,
			Panchayat:       panchayat,
			Ward:            req.Ward,
			Category:        model.EventCategory(req.Category),
			MaxParticipants: req.MaxParticipants,
			ContactPhone:    req.ContactPhone,
			ContactEmail:    req.ContactEmail,
			CreatedBy:       user.ID,
		})
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusCreated, api.EventResponse{
			Success: true,
			Message: "Event created successfully",
			Event:   event,
		})
	}
}

// ListEventsHandler 進行中的活動，依日期由近到遠
// @Summary     List events
// @Description 只列出 is_active 的活動，可依 district、panchayat 篩選
// @Tags        events
// @Produce     json
// @Param       district   query     string  false  "區"
// @Param       panchayat  query     string  false  "村"
// @Param       page       query     int     false  "頁碼"  default(1)
// @Param       limit      query     int     false  "每頁筆數"  default(20)
// @Success     200        {object}  api.EventListResponse
// @Failure     500        {object}  api.ErrorResponse
// @Router      /events [get]
func ListEventsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f := model.EventFilter{
			District:  handler.QueryPtr(c, "district"),
			Panchayat: handler.QueryPtr(c, "panchayat"),
			Page:      handler.ParsePage(c, defaultLimit),
		}
		events, total, err := listEvents(c.Request().Context(), db, f)
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.EventListResponse{
			Success:    true,
			Events:     events,
			Pagination: model.NewPagination(f.Page, total),
		})
	}
}

// GetEventHandler 取得單一活動與報名人數
// @Summary     Get an event
// @Tags        events
// @Produce     json
// @Param       id   path      string  true  "活動 ID"
// @Success     200  {object}  api.EventResponse
// @Failure     400  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Router      /events/{id} [get]
func GetEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		event, err := getEventByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.EventResponse{Success: true, Event: event})
	}
}

// UpdateEventHandler 修改活動，僅管理員
// @Summary     Update an event
// @Description 合併後的結束時間不得早於開始時間；event_end_date、ward、max_participants、contact_phone、contact_email 傳 null 清除
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id    path      string                  true  "活動 ID"
// @Param       body  body      api.UpdateEventRequest  true  "修改內容"
// @Success     200   {object}  api.EventResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     403   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /events/{id} [put]
func UpdateEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.UpdateEventRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		upd := model.EventUpdate{
			Title:                handler.TrimPtr(req.Title),
			Description:          handler.TrimPtr(req.Description),
			EventDate:            req.EventDate,
			EventEndDate:         req.EventEndDate.Value,
			Venue:                handler.TrimPtr(req.Venue),
			District:             handler.TrimPtr(req.District),
			Panchayat:            handler.TrimPtr(req.Panchayat),
			Ward:                 req.Ward.Value,
			MaxParticipants:      req.MaxParticipants.Value,
			ContactPhone:         req.ContactPhone.Value,
			ContactEmail:         req.ContactEmail.Value,
			IsActive:             req.IsActive,
			ClearEndDate:         req.EventEndDate.Clear(),
			ClearWard:            req.Ward.Clear(),
			ClearMaxParticipants: req.MaxParticipants.Clear(),
			ClearContactPhone:    req.ContactPhone.Clear(),
			ClearContactEmail:    req.ContactEmail.Clear(),
		}
		if err := handler.NonBlank(upd.Title, upd.Description, upd.Venue, upd.District, upd.Panchayat); err != nil {
			return handler.Fail(c, err)
		}
		if req.Category != nil {
			cat := model.EventCategory(*req.Category)
			upd.Category = &cat
		}

		ctx := c.Request().Context()
		current, err := getEventByID(ctx, db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		start, end := current.EventDate, current.EventEndDate
		if upd.EventDate != nil {
			start = *upd.EventDate
		}
		if req.EventEndDate.Set {
			end = upd.EventEndDate
		}
		if end != nil && end.Before(start) {
			return handler.Fail(c, store.ErrInvalidDates)
		}

		event, err := updateEvent(ctx, db, id, upd)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.EventResponse{
			Success: true,
			Message: "Event updated successfully",
			Event:   event,
		})
	}
}

// DeleteEventHandler 刪除活動與其報名資料，僅管理員
// @Summary     Delete an event
// @Tags        events
// @Produce     json
// @Param       id   path      string  true  "活動 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     403  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /events/{id} [delete]
func DeleteEventHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		if err := deleteEvent(c.Request().Context(), db, id); err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Event deleted successfully"})
	}
}
