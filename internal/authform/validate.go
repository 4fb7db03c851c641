package authform

import "unicode/utf8"

// ValidateRegistration returns the message of the first violated
// registration rule, or "" when the data is acceptable. Email format is left
// to the input element; the backend re-validates everything anyway.
func ValidateRegistration(d FormData) string {
	if d.Username == "" || d.Email == "" || d.Password == "" {
		return "All fields are required"
	}
	if utf8.RuneCountInString(d.Username) < 3 {
		return "Username must be at least 3 characters"
	}
	if utf8.RuneCountInString(d.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	if d.Password != d.ConfirmPassword {
		return "Passwords do not match"
	}
	return ""
}

// ValidateLogin returns the message of the violated login rule, or "".
func ValidateLogin(d FormData) string {
	if d.Username == "" || d.Password == "" {
		return "Username and password are required"
	}
	return ""
}
