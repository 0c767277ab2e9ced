package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// Validator 實作 echo.Validator，錯誤訊息以 json 欄位名稱呈現
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// 可清除欄位以實際值套用規則，null 或未出現時視為空值
	v.RegisterCustomTypeFunc(optionalValue, api.Optional[string]{}, api.Optional[int]{}, api.Optional[time.Time]{})
	return &Validator{validate: v}
}

func optionalValue(field reflect.Value) any {
	if o, ok := field.Interface().(interface{ Underlying() any }); ok {
		return o.Underlying()
	}
	return nil
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.Validation, "Validation failed", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperr.Wrap(apperr.Validation, "Validation failed: "+strings.Join(msgs, "; "), err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "uuid":
		return field + " must be a valid id"
	case "url":
		return field + " must be a valid URL"
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}
