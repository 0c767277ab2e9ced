// Package apperr 定義 API 回應使用的錯誤分類與 HTTP 狀態對應
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	RateLimited
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case RateLimited:
		return "rate_limited"
	}
	return "internal"
}

// Status 回傳對應的 HTTP 狀態碼。Conflict 與前端約定回 400
func (k Kind) Status() int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case RateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// Conflict 細分代碼
const (
	CodeEventInactive  = "inactive"
	CodeEventFull      = "full"
	CodeDuplicatePhone = "duplicate_phone"
	CodeDuplicateEmail = "duplicate_email"
)

type Error struct {
	Kind    Kind
	Message string
	Code    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

func Invalid(msg string) *Error      { return New(Validation, msg) }
func Unauthorized(msg string) *Error { return New(Unauthenticated, msg) }
func Denied(msg string) *Error       { return New(Forbidden, msg) }
func Missing(msg string) *Error      { return New(NotFound, msg) }

// From 取出 err 鏈上的 *Error；非 *Error 一律視為 Internal
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(Internal, "Server error", err)
}

func KindOf(err error) Kind {
	return From(err).Kind
}
