package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSlug      = errors.New("invalid slug")
	ErrReservedSlug     = errors.New("slug is reserved")
	ErrInvalidEmail     = errors.New("invalid e-mail address")
	ErrWeakPassword     = errors.New("password must have at least 6 characters and a letter")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidBirthDate = errors.New("invalid birth date")
	ErrInvalidDomain    = errors.New("invalid domain")
)
