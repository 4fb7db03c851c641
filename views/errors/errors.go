package errors

import (
	"context"
	"fmt"
	"io"
	"placelists/views/shared"

	"github.com/a-h/templ"
)

func Error404() templ.Component {
	return GenericError(404, "Page not found")
}

func Error500() templ.Component {
	return GenericError(500, "Something went wrong")
}

func GenericError(code int, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-page"><h1>%d</h1><p>%s</p><a href="/">Back to start</a></section>`,
			code, templ.EscapeString(message))
		return err
	})
	return shared.Layout(fmt.Sprintf("Error %d", code), body)
}
