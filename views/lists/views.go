package lists

import (
	"context"
	"fmt"
	"io"
	"placelists/components"
	"placelists/gen/placelists_dev/public/model"
	"placelists/views/shared"

	"github.com/a-h/templ"
)

func Index(cards []CardProps, newList model.Lists) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Your lists</h1><div id="lists" class="cards">`); err != nil {
			return err
		}
		for _, card := range cards {
			if err := Card(card).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		return newListForm(newList, "").Render(ctx, w)
	})
	return shared.Layout("Lists", body)
}

// Card renders a single list card, either read-only or with the inline name
// editor when EditingName is set.
func Card(props CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" class="card">`, props.Id()); err != nil {
			return err
		}

		if props.EditingName {
			if err := editNameForm(props).Render(ctx, w); err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(w,
				`<span class="card-name">%s</span>`+
					`<button hx-get="%s" hx-target="%s" hx-swap="outerHTML">Rename</button>`+
					`<button hx-delete="%s" hx-target="%s" hx-swap="outerHTML swap:0.2s" hx-headers='{"X-CSRF-Token":"%s"}' hx-confirm="Delete this list?">Delete</button>`,
				templ.EscapeString(props.List.Name),
				props.EditListUrl(), props.Selector(),
				props.DeleteUrl(), props.Selector(),
				templ.EscapeString(components.GetCsrfToken(ctx)))
			if err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func editNameForm(props CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form hx-patch="%s" hx-target="%s" hx-swap="outerHTML">`+
				`<input type="hidden" name="_csrf" value="%s">`+
				`<input type="text" name="name" value="%s" autofocus>`+
				`<button type="submit">Save</button>`+
				`</form>`,
			props.PatchUrl(), props.Selector(),
			templ.EscapeString(components.GetCsrfToken(ctx)),
			templ.EscapeString(props.List.Name))
		return err
	})
}

// CreateSuccess is the htmx response to a successful create: the new card
// plus a fresh out-of-band create form.
func CreateSuccess(props CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Card(props).Render(ctx, w); err != nil {
			return err
		}
		return oobNewListForm(model.Lists{}, "").Render(ctx, w)
	})
}

// CreateFailure re-renders the create form out-of-band with the error.
func CreateFailure(newList model.Lists, errMsg string) templ.Component {
	return oobNewListForm(newList, errMsg)
}

func oobNewListForm(newList model.Lists, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="new-list" hx-swap-oob="true">`); err != nil {
			return err
		}
		if err := createForm(newList, errMsg).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func newListForm(newList model.Lists, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="new-list">`); err != nil {
			return err
		}
		if err := createForm(newList, errMsg).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func createForm(newList model.Lists, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<div class="alert alert-error">%s</div>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form hx-post="/app/lists" hx-target="#lists" hx-swap="beforeend">`+
				`<input type="hidden" name="_csrf" value="%s">`+
				`<input type="text" name="name" value="%s" placeholder="New list name">`+
				`<button type="submit">Create</button>`+
				`</form>`,
			templ.EscapeString(components.GetCsrfToken(ctx)),
			templ.EscapeString(newList.Name))
		return err
	})
}
