package httpapi

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// passwordSymbols is the accepted special-character set for passwords.
const passwordSymbols = "!@#$%^&*()_+-="

const msgPasswordPolicy = "Password must include at least one uppercase letter, one lowercase letter, one number, and one special character, and be between 8 and 32 characters long"

type registerRequest struct {
	Username string `json:"username" validate:"required,min=4,max=32"`
	Password string `json:"password" validate:"required,passwd"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type logoutRequest struct {
	Username string `json:"username" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so validation errors map onto
	// the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("passwd", validPassword); err != nil {
		panic(err)
	}

	return v
}

// validPassword enforces the password policy: 8-32 characters with at least
// one uppercase letter, one lowercase letter, one digit, and one symbol from
// passwordSymbols.
func validPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || len(s) > 32 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}

// validateRequest validates the bound payload and renders violations as a
// field-to-messages map, or nil if the payload is valid.
func (s *Server) validateRequest(req any) map[string][]string {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"request": {err.Error()}}
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "username":
		if fe.Tag() == "required" {
			return "username is a required field!"
		}
		return "Username must have 4-32 characters!"
	case "password":
		if fe.Tag() == "required" {
			return "password is a required field!"
		}
		return msgPasswordPolicy
	}
	return fe.Error()
}
