package store

import (
	"errors"
	"strings"

	"courses-api/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError 聚合所有欄位約束錯誤，順序依宣告順序回報。
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func checkStruct(v any, message func(fe validator.FieldError) string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return err
	}
	msgs := make([]string, 0, len(fes))
	for _, fe := range fes {
		msgs = append(msgs, message(fe))
	}
	return &ValidationError{Messages: msgs}
}

func userMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "A first name is required"
	case "LastName":
		return "A last name is required"
	case "EmailAddress":
		if fe.Tag() == "email" {
			return "Please provide a valid email address"
		}
		return "An email address is required"
	case "Password":
		return "A password is required"
	}
	return fe.Error()
}

func courseMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "A title is required"
	case "Description":
		return "A description is required"
	}
	return fe.Error()
}

func checkUser(u *model.User) error { return checkStruct(u, userMessage) }

func checkCourse(c *model.Course) error { return checkStruct(c, courseMessage) }
