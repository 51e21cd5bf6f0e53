package form

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/icmt/icmt/internal/icmt/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
	})
	return validate
}

// ValidationError lists every failed field, in form order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// First returns the message shown inline on the page
func (e *ValidationError) First() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrValidationFailed
}

// Validate runs the required-field checks the browser would apply before
// submit. The backend validates again and its answer wins.
func (f *Form) Validate(now time.Time) error {
	v := f.v
	v.FirstName = strings.TrimSpace(v.FirstName)
	v.LastName = strings.TrimSpace(v.LastName)
	v.Email = strings.TrimSpace(v.Email)
	v.University = strings.TrimSpace(v.University)
	v.ExpectedGraduationYear = strings.TrimSpace(v.ExpectedGraduationYear)
	v.ResumeURL = strings.TrimSpace(v.ResumeURL)

	var messages []string
	if err := getValidator().Struct(v); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range fieldErrs {
			messages = append(messages, message(fe))
		}
	}

	if year, err := strconv.Atoi(v.ExpectedGraduationYear); err == nil && !inWindow(year, now) {
		years := GraduationYears(now)
		messages = append(messages, fmt.Sprintf("Expected Graduation Year must be between %d and %d", years[0], years[len(years)-1]))
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func inWindow(year int, now time.Time) bool {
	return year >= now.Year() && year < now.Year()+10
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return fe.Field() + " must be acknowledged"
		}
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "number":
		return fe.Field() + " must be a number"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
