package validators

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	nicknamePattern = regexp.MustCompile(`^\S{1,10}$`)
)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// EmailIsValid reports whether the email matches the accepted pattern
func EmailIsValid(email string) bool {
	return emailPattern.MatchString(email)
}

// NicknameIsValid reports whether the nickname is 1-10 non-whitespace characters
func NicknameIsValid(nickname string) bool {
	return nicknamePattern.MatchString(nickname)
}
