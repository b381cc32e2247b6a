package httpapi

import "net/http"

// Response messages are part of the public contract and match the documented
// behavior of the service.
const (
	// create_user and duplicate-username responses use the plural form,
	// login/logout validation responses the singular one.
	msgValidationsErrors = "Validations errors"
	msgValidationErrors  = "Validation errors"

	msgUserRegistered     = "User registered successfully!"
	msgUsernameTaken      = "Username already being used!"
	msgInvalidCredentials = "Invalid username or password!"
	msgLoginSuccessful    = "Login successful!"
	msgUserLoggedOut      = "User logged out successfully!"
	msgUserNotFound       = "User not found!"
	msgUnexpectedError    = "An unexpected error occurred. Please try again later!"
	msgInvalidJSON        = "Invalid JSON body!"
)

// envelope is the uniform response body. Struct field order is the JSON
// serialization order.
type envelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Data        any                 `json:"data,omitempty"`
	AccessToken string              `json:"access_token,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
	Code        int                 `json:"code,omitempty"`
}

// userData is the registration payload echoed back to the caller. The
// password hash never appears here.
type userData struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DateCreated string `json:"date_created"`
}

const dateCreatedLayout = "2006-01-02 15:04:05"

// internalError is the 500 body: a generic message, no internal detail.
// The real cause is only logged.
type internalError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func newInternalError() internalError {
	return internalError{Message: msgUnexpectedError, Code: http.StatusInternalServerError}
}
