package login

import (
	"context"
	"fmt"
	"io"
	"placelists/components"
	"placelists/internal/authform"
	"placelists/views/shared"

	"github.com/a-h/templ"
)

// Auth renders the login/registration form for the mode held in state. The
// tab control links between /login and /register, which resets the fields.
func Auth(state authform.State, canCancel bool) templ.Component {
	title := "Log in"
	if state.Mode == authform.ModeRegister {
		title = "Register"
	}
	return shared.Layout(title, authCard(state, canCancel))
}

func authCard(state authform.State, canCancel bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="auth-card">`); err != nil {
			return err
		}

		if canCancel {
			if _, err := io.WriteString(w, `<a href="/" class="auth-close" aria-label="Close">&times;</a>`); err != nil {
				return err
			}
		}

		if err := tabs(state.Mode).Render(ctx, w); err != nil {
			return err
		}
		if err := messages(state).Render(ctx, w); err != nil {
			return err
		}

		var form templ.Component
		if state.Mode == authform.ModeRegister {
			form = registerForm(state)
		} else {
			form = loginForm(state)
		}
		if err := form.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func tabs(mode authform.Mode) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		loginClass, registerClass := "tab active", "tab"
		if mode == authform.ModeRegister {
			loginClass, registerClass = "tab", "tab active"
		}
		_, err := fmt.Fprintf(w, `<nav class="auth-tabs"><a href="/login" class="%s">Log in</a><a href="/register" class="%s">Register</a></nav>`,
			loginClass, registerClass)
		return err
	})
}

func messages(state authform.State) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if state.Error != "" {
			_, err := fmt.Fprintf(w, `<div class="alert alert-error">%s</div>`, templ.EscapeString(state.Error))
			return err
		}
		if state.Success == "" {
			return nil
		}

		// After a successful registration the success panel swaps in the
		// login page once the delay elapses, mirroring the form's own
		// delayed mode switch.
		if state.Mode == authform.ModeRegister {
			_, err := fmt.Fprintf(w,
				`<div class="alert alert-success" hx-get="/login" hx-trigger="load delay:2s" hx-target="body" hx-push-url="true">%s</div>`,
				templ.EscapeString(state.Success))
			return err
		}

		_, err := fmt.Fprintf(w, `<div class="alert alert-success">%s</div>`, templ.EscapeString(state.Success))
		return err
	})
}

func loginForm(state authform.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/login">
<input type="hidden" name="_csrf" value="%s">
<label>Username <input type="text" name="username" value="%s" autocomplete="username"></label>
<label>Password <input type="password" name="password" autocomplete="current-password"></label>
<button type="submit"%s>Log in</button>
</form>`,
			templ.EscapeString(components.GetCsrfToken(ctx)),
			templ.EscapeString(state.Data.Username),
			disabledAttr(state.Loading))
		return err
	})
}

func registerForm(state authform.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/register">
<input type="hidden" name="_csrf" value="%s">
<label>Username <input type="text" name="username" value="%s" autocomplete="username"></label>
<label>Email <input type="email" name="email" value="%s" autocomplete="email"></label>
<label>Password <input type="password" name="password" autocomplete="new-password"></label>
<label>Confirm password <input type="password" name="password_confirmation" autocomplete="new-password"></label>
<button type="submit"%s>Register</button>
</form>`,
			templ.EscapeString(components.GetCsrfToken(ctx)),
			templ.EscapeString(state.Data.Username),
			templ.EscapeString(state.Data.Email),
			disabledAttr(state.Loading))
		return err
	})
}

func disabledAttr(loading bool) string {
	if loading {
		return " disabled"
	}
	return ""
}
