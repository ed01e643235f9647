package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-rest-facade/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldIdentity targets the username-or-phone pair of a login form.
	FieldIdentity = "identity"

	// FieldSecret targets the password-or-code pair of a login form.
	FieldSecret = "secret"

	FieldPhone    = "phone"
	FieldPassword = "password"
	FieldText     = "text"
)

type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginForm:
		return v.validateLoginForm(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value, fields...)

	case models.RegisterForm:
		return v.validateRegisterForm(ctx, value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(ctx, *value, fields...)

	case models.Feedback:
		return v.validateFeedback(ctx, value, fields...)
	case *models.Feedback:
		return v.validateFeedback(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *FormValidator) validateLoginForm(ctx context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentity, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if blank(form.Username) && blank(form.Phone) {
				return ErrEmptyIdentity
			}
		case FieldSecret:
			if blank(form.Password) && blank(form.Code) {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRegisterForm(ctx context.Context, form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhone, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPhone:
			if blank(form.Phone) {
				return ErrEmptyPhone
			}
		case FieldPassword:
			if blank(form.Password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateFeedback(ctx context.Context, feedback models.Feedback, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if blank(feedback.Text) {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
