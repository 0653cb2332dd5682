package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"yoga-front/internal/domain"
)

// Form validity is a pure verdict over the submitted field values:
// invalid forms never reach a gateway.

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	FirstName string `form:"firstName" validate:"required,min=3,max=20"`
	LastName  string `form:"lastName" validate:"required,min=3,max=20"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=3,max=40"`
}

func (f registerForm) request() domain.RegisterRequest {
	return domain.RegisterRequest{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
	}
}

type sessionForm struct {
	Name        string `form:"name" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	TeacherID   int64  `form:"teacher_id" validate:"required,gt=0"`
	Description string `form:"description" validate:"required,max=2000"`
}

func (f sessionForm) write() domain.SessionWrite {
	return domain.SessionWrite{
		Name:        f.Name,
		Date:        f.Date,
		TeacherID:   f.TeacherID,
		Description: f.Description,
	}
}

// newValidator builds the shared struct validator. Fields are reported
// under their form names so screens can key messages by input.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationMessages maps a failed struct validation to one message per
// form field.
func validationMessages(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required"
		case "email":
			out[fe.Field()] = "Enter a valid email address"
		case "min":
			out[fe.Field()] = fmt.Sprintf("Must be at least %s characters", fe.Param())
		case "max":
			out[fe.Field()] = fmt.Sprintf("Must be at most %s characters", fe.Param())
		case "datetime":
			out[fe.Field()] = "Enter a valid date"
		case "gt":
			out[fe.Field()] = "Choose a teacher"
		default:
			out[fe.Field()] = "Invalid value"
		}
	}
	return out
}
