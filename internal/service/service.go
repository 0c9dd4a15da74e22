// Package service contains the business logic layer.
//
// The layering mirrors the rest of the application:
//
//	presentation (desktop frontend, external) → service → repository → SQLite
//
// Services validate input, orchestrate repository and image-store calls,
// and log business events. They accept plain values and return domain
// models and apperror values — no SQL and no widget types on either side.
// Every failure that leaves this package is an *apperror.AppError whose
// Message is ready for a blocking notification; nothing below this layer
// panics across the boundary.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"deskblog/internal/apperror"
)

// validate is shared by all services. A validator.Validate caches parsed
// struct tags, so one instance is deliberately reused.
var validate = validator.New()

// checkInput runs struct-tag validation and converts the first failure into
// an apperror.ValidationFailed carrying the offending field.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return apperror.ValidationFailed(f.Field(), invalidFieldMessage(f))
	}
	return apperror.ValidationFailed("", err.Error())
}

func invalidFieldMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return f.Field() + " is required"
	case "email":
		return f.Field() + " must be a valid email address"
	case "min":
		return f.Field() + " must be at least " + f.Param() + " characters"
	case "max":
		return f.Field() + " must be " + f.Param() + " characters or less"
	default:
		return f.Field() + " is invalid"
	}
}

// asAppError passes apperror values through untouched and wraps anything
// else as a storage error, so the caller always gets a presentable message.
func asAppError(err error) error {
	var ae *apperror.AppError
	if errors.As(err, &ae) {
		return ae
	}
	return apperror.Storage(err)
}
