package usecase

import (
	"net/http"

	"inkpress/src/core/domain"
)

// ActionResult is the uniform outcome of a dashboard action.
//
// On success only Data is set. A whole-operation failure sets Error (and Code);
// a validation failure sets Errors, keyed by field name.
type ActionResult[T any] struct {
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`

	// Status is the HTTP-equivalent status for binding layers.
	Status int `json:"-"`
}

func succeed[T any](data T) ActionResult[T] {
	return ActionResult[T]{Success: true, Data: data, Status: http.StatusOK}
}

func failWith[T any](info domain.ErrorInfo) ActionResult[T] {
	return ActionResult[T]{
		Error:  info.Message,
		Code:   info.Code,
		Status: info.Status,
	}
}

func failFields[T any](errs map[string]string) ActionResult[T] {
	return ActionResult[T]{
		Code:   domain.KindValidation.Code(),
		Errors: errs,
		Status: domain.KindValidation.Status(),
	}
}
