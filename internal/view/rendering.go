// Package view renders templ components into Fiber responses.
package view

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

// RenderComponent writes the component as an HTML response with the given
// status. The request context is passed through to the component, which is
// how the CSRF token and login state reach the views.
func RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status).Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Context(), c)
}
