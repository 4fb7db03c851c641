package shared

import (
	"context"
	"fmt"
	"io"
	"placelists/components"

	"github.com/a-h/templ"
)

// Layout wraps a page body in the HTML shell: head, htmx, stylesheet, and
// the top bar with the logout control when a user is logged in.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - PlaceLists</title>
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@1.9.9"></script>
</head>
<body>
`, templ.EscapeString(title)); err != nil {
			return err
		}

		if err := topBar().Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

func topBar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="topbar"><a href="/" class="brand">PlaceLists</a>`); err != nil {
			return err
		}

		if components.GetLoggedIn(ctx) {
			_, err := fmt.Fprintf(w, `<form method="post" action="/logout" class="logout">`+
				`<input type="hidden" name="_csrf" value="%s">`+
				`<button type="submit">Log out</button></form>`,
				templ.EscapeString(components.GetCsrfToken(ctx)))
			if err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</header>\n")
		return err
	})
}
