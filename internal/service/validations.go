package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Whitespace only text is treated as empty
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// Dates are validated as time.Time, so required rejects the zero date
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(entity.Date); ok {
				return d.Time()
			}
			return nil
		}, entity.Date{})
		validate.RegisterValidation("content_kind", func(fl validator.FieldLevel) bool {
			switch entity.ContentKind(fl.Field().String()) {
			case entity.KindPost, entity.KindComment, entity.KindTip:
				return true
			}
			return false
		})
	})
}

// validateStruct joins every field error with ErrValidation so handlers can map it to 400.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.New("validation unexpected error: " + err.Error())
}
