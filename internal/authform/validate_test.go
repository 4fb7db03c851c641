package authform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	valid := FormData{Username: "alice", Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"}

	cases := []struct {
		name   string
		mutate func(*FormData)
		want   string
	}{
		{"valid", func(d *FormData) {}, ""},
		{"empty username", func(d *FormData) { d.Username = "" }, "All fields are required"},
		{"empty email", func(d *FormData) { d.Email = "" }, "All fields are required"},
		{"empty password", func(d *FormData) { d.Password = "" }, "All fields are required"},
		{"short username", func(d *FormData) { d.Username = "ab" }, "Username must be at least 3 characters"},
		{"short password", func(d *FormData) { d.Password = "abc12"; d.ConfirmPassword = "abc12" }, "Password must be at least 6 characters"},
		{"mismatch", func(d *FormData) { d.ConfirmPassword = "secret2" }, "Passwords do not match"},
		{"empty confirmation", func(d *FormData) { d.ConfirmPassword = "" }, "Passwords do not match"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			assert.Equal(t, tc.want, ValidateRegistration(d))
		})
	}
}

func TestValidateRegistrationRuleOrder(t *testing.T) {
	// Multiple violations: the first rule in order wins.
	d := FormData{Username: "ab", Email: "a@b.com", Password: "x", ConfirmPassword: "y"}
	assert.Equal(t, "Username must be at least 3 characters", ValidateRegistration(d))
}

func TestValidateLogin(t *testing.T) {
	assert.Equal(t, "", ValidateLogin(FormData{Username: "alice", Password: "x"}))
	assert.Equal(t, "Username and password are required", ValidateLogin(FormData{Username: "alice"}))
	assert.Equal(t, "Username and password are required", ValidateLogin(FormData{Password: "x"}))
	assert.Equal(t, "Username and password are required", ValidateLogin(FormData{}))

	// No length rules on login.
	assert.Equal(t, "", ValidateLogin(FormData{Username: "ab", Password: "x"}))
}
