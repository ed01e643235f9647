package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentity = errors.New("username or phone is required")
	ErrEmptySecret   = errors.New("password or verification code is required")
	ErrEmptyPhone    = errors.New("phone is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyText     = errors.New("feedback text is required")
)
