package login

import "placelists/internal/authform"

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f LoginForm) FormData() authform.FormData {
	return authform.FormData{
		Username: f.Username,
		Password: f.Password,
	}
}

type RegistrationForm struct {
	Username             string `form:"username"`
	Email                string `form:"email"`
	Password             string `form:"password"`
	PasswordConfirmation string `form:"password_confirmation"`
}

func (f RegistrationForm) FormData() authform.FormData {
	return authform.FormData{
		Username:        f.Username,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.PasswordConfirmation,
	}
}
