package app

import (
	"placelists/internal/constants"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func SetLoggedIn(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionStore.Get(c)
		if err != nil {
			panic(err)
		}

		loggedIn := sess.Get(constants.LoggedInSessionKey) == "true"
		c.Locals(constants.LoggedInSessionKey, loggedIn)

		if loggedIn {
			if userID, ok := sess.Get(constants.UserIDSessionKey).(int64); ok {
				c.Locals(constants.UserIDSessionKey, userID)
			}
			if username, ok := sess.Get(constants.UsernameSessionKey).(string); ok {
				c.Locals(constants.UsernameSessionKey, username)
			}
		}

		return c.Next()
	}
}

func RequireLoggedIn(c *fiber.Ctx) error {
	loggedIn, _ := c.Locals(constants.LoggedInSessionKey).(bool)
	if !loggedIn {
		fiberlog.Error("not logged in, redirecting to login")
		return c.Redirect("/login", fiber.StatusFound)
	}

	return c.Next()
}

func RedirectInternalIfLoggedIn(c *fiber.Ctx) error {
	loggedIn, _ := c.Locals(constants.LoggedInSessionKey).(bool)
	if loggedIn {
		return c.Redirect("/app/lists", fiber.StatusFound)
	}

	return c.Next()
}

func currentUserID(c *fiber.Ctx) int64 {
	userID, _ := c.Locals(constants.UserIDSessionKey).(int64)
	return userID
}
