package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes, minimal length", "Aa1!aaaa", true},
		{"typical password", "Secret1!", true},
		{"no uppercase", "alllowercase1!", false},
		{"no lowercase", "ALLUPPERCASE1!", false},
		{"no digit", "NoDigits!!", false},
		{"no symbol", "NoSymbol11", false},
		{"too short", "Aa1!", false},
		{"too long", "Aa1!aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"symbol from the extended set", "Passw0rd_", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.password, "passwd")
			if tt.valid {
				assert.NoError(t, err, "password %q should be accepted", tt.password)
			} else {
				assert.Error(t, err, "password %q should be rejected", tt.password)
			}
		})
	}
}

func TestValidateRequest_FieldMessages(t *testing.T) {
	s, _, _ := newTestServer(t)

	errs := s.validateRequest(&registerRequest{Username: "abc", Password: "Secret1!"})
	assert.Equal(t, map[string][]string{
		"username": {"Username must have 4-32 characters!"},
	}, errs)

	errs = s.validateRequest(&registerRequest{})
	assert.Equal(t, map[string][]string{
		"username": {"username is a required field!"},
		"password": {"password is a required field!"},
	}, errs)

	assert.Nil(t, s.validateRequest(&registerRequest{Username: "alice123", Password: "Secret1!"}))
}
