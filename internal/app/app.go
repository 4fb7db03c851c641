package app

import (
	"context"
	"errors"
	"net/http"
	"placelists/gen/placelists_dev/public/model"
	"placelists/internal/auth"
	"placelists/internal/authform"
	"placelists/internal/config"
	"placelists/internal/constants"
	"placelists/internal/repo"
	"placelists/internal/view"
	errorviews "placelists/views/errors"
	listviews "placelists/views/lists"
	loginviews "placelists/views/login"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/postgres/v3"
)

func New(cfg *config.Config) *fiber.App {
	fiberlog.Debug("Starting app with env:", cfg.Env)

	app := fiber.New(fiber.Config{
		AppName:      "PlaceLists 0.1.0",
		ErrorHandler: errorHandler,
	})

	sessionConfig := session.Config{
		Expiration:     24 * time.Hour * 30,
		KeyLookup:      "cookie:placelists_session_id",
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
	}
	if cfg.DatabaseUrl != "" {
		sessionConfig.Storage = postgres.New(postgres.Config{
			ConnectionURI: cfg.DatabaseUrl,
		})
	}
	sessionStore := session.New(sessionConfig)

	app.Use(logger.New(logger.Config{
		DisableColors: cfg.DisableLogColors,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.EnableStackTrace,
	}))
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(favicon.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(cfg.StaticFS),
		PathPrefix: "static",
	}))

	// Combine two CSRF extractors: use form field as default
	// so forms work without JS, with header as fallback.
	csrfFromForm := csrf.CsrfFromForm(constants.CsrfInputName)
	csrfFromHeader := csrf.CsrfFromHeader("X-CSRF-Token")

	app.Use(csrf.New(csrf.Config{
		// The JSON API is token-authenticated, not cookie-authenticated.
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		CookieSecure: cfg.CookieSecure,
		Session:      sessionStore,
		Extractor: func(c *fiber.Ctx) (string, error) {
			token, err := csrfFromForm(c)
			if err == nil {
				return token, nil
			}

			if errors.Is(err, csrf.ErrMissingForm) {
				return csrfFromHeader(c)
			}

			// unexpected programmer error
			panic(err)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			fiberlog.Error("CSRF error: ", err.Error())
			return view.RenderComponent(c, fiber.StatusForbidden,
				errorviews.GenericError(fiber.StatusForbidden, "Forbidden"))
		},
		ContextKey: constants.CsrfTokenContextKey,
		CookieName: "placelists_csrf",
	}))

	app.Use(SetLoggedIn(sessionStore))

	authService := auth.NewService(cfg.Repo, cfg.TokenSigningKey)

	login := LoginHandlers{
		forms:        formService{svc: authService},
		sessionStore: sessionStore,
	}

	lists := ListsHandlers{
		repo:         cfg.Repo,
		sessionStore: sessionStore,
	}

	api := ApiHandlers{
		svc:  authService,
		repo: cfg.Repo,
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if loggedIn, _ := c.Locals(constants.LoggedInSessionKey).(bool); loggedIn {
			return c.Redirect("/app/lists", fiber.StatusFound)
		}
		return c.Redirect("/login", fiber.StatusFound)
	})
	app.Get("/login", RedirectInternalIfLoggedIn, login.LoginForm)
	app.Post("/login", login.SubmitLogin)
	app.Post("/logout", login.Logout)

	app.Get("/register", RedirectInternalIfLoggedIn, login.Register)
	app.Post("/register", login.SubmitRegistration)

	internal := app.Group("/app", RequireLoggedIn)

	internal.Get("/lists", lists.Index)
	internal.Post("/lists", lists.Create)
	internal.Get("/lists/:id/edit", lists.Edit)
	internal.Patch("/lists/:id", lists.Update)
	internal.Delete("/lists/:id", lists.Delete)

	app.Post("/api/users/register", api.RegisterUser)
	app.Post("/api/users/login", api.LoginUser)

	userApi := app.Group("/api/user", api.RequireToken)
	userApi.Get("/lists", api.ListsIndex)
	userApi.Post("/lists", api.CreateList)
	userApi.Delete("/lists/:id", api.DeleteList)

	return app
}

// formService adapts the credential service to the form component's view of
// the remote operations.
type formService struct {
	svc *auth.Service
}

func (s formService) Register(ctx context.Context, req authform.RegisterRequest) (authform.User, error) {
	user, err := s.svc.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return authform.User{}, err
	}
	return toFormUser(user), nil
}

func (s formService) Login(ctx context.Context, req authform.LoginRequest) (authform.Session, error) {
	session, err := s.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return authform.Session{}, err
	}
	return authform.Session{
		Token: session.Token,
		User:  toFormUser(session.User),
	}, nil
}

func toFormUser(user model.Users) authform.User {
	u := authform.User{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
	if user.CreatedAt != nil {
		u.CreatedAt = *user.CreatedAt
	}
	return u
}

type LoginHandlers struct {
	forms        formService
	sessionStore *session.Store
}

func (l *LoginHandlers) LoginForm(c *fiber.Ctx) error {
	state := authform.State{Mode: authform.ModeLogin}
	return view.RenderComponent(c, fiber.StatusOK, loginviews.Auth(state, false))
}

func (l *LoginHandlers) Register(c *fiber.Ctx) error {
	state := authform.State{Mode: authform.ModeRegister}
	return view.RenderComponent(c, fiber.StatusOK, loginviews.Auth(state, false))
}

func (l *LoginHandlers) SubmitLogin(c *fiber.Ctx) error {
	var body loginviews.LoginForm
	if err := c.BodyParser(&body); err != nil {
		return err
	}

	var (
		loggedIn bool
		sessErr  error
	)
	form := authform.New(l.forms, authform.OnLoginSuccess(func(s authform.Session) {
		loggedIn = true
		sessErr = l.storeSession(c, s)
	}))
	defer form.Close()

	data := body.FormData()
	form.SetUsername(data.Username)
	form.SetPassword(data.Password)
	form.SubmitLogin(c.Context())

	if sessErr != nil {
		return sessErr
	}

	if !loggedIn {
		return view.RenderComponent(c, fiber.StatusUnprocessableEntity,
			loginviews.Auth(form.State(), false))
	}

	c.Set("HX-Location", "/app/lists")
	return c.Redirect("/app/lists", fiber.StatusFound)
}

func (l *LoginHandlers) SubmitRegistration(c *fiber.Ctx) error {
	var body loginviews.RegistrationForm
	if err := c.BodyParser(&body); err != nil {
		return err
	}

	form := authform.New(l.forms)
	defer form.Close()

	data := body.FormData()
	form.SetUsername(data.Username)
	form.SetEmail(data.Email)
	form.SetPassword(data.Password)
	form.SetConfirmPassword(data.ConfirmPassword)
	form.SubmitRegister(c.Context())

	state := form.State()
	if state.Error != "" {
		return view.RenderComponent(c, fiber.StatusUnprocessableEntity,
			loginviews.Auth(state, false))
	}

	// The success panel loads /login after the delay; the per-request form
	// instance is closed, so its own timer never fires.
	return view.RenderComponent(c, fiber.StatusOK, loginviews.Auth(state, false))
}

func (l *LoginHandlers) storeSession(c *fiber.Ctx, s authform.Session) error {
	sess, err := l.sessionStore.Get(c)
	if err != nil {
		return err
	}

	if err = sess.Reset(); err != nil {
		return err
	}
	sess.Set(constants.LoggedInSessionKey, "true")
	sess.Set(constants.UserIDSessionKey, s.User.ID)
	sess.Set(constants.UsernameSessionKey, s.User.Username)
	return sess.Save()
}

func (l *LoginHandlers) Logout(c *fiber.Ctx) error {
	sess, err := l.sessionStore.Get(c)
	if err != nil {
		panic(err)
	}
	if err = sess.Reset(); err != nil {
		panic(err)
	}

	c.Set("HX-Location", "/login")
	return c.Redirect("/login", fiber.StatusFound)
}

type ListsHandlers struct {
	repo         repo.Repository
	sessionStore *session.Store
}

func (l *ListsHandlers) Index(c *fiber.Ctx) error {
	results, err := l.repo.FilterLists(c.Context(), currentUserID(c))
	if err != nil {
		return err
	}

	cards := make([]listviews.CardProps, len(results))
	for i, result := range results {
		cards[i] = listviews.CardProps{
			EditingName: false,
			List:        result,
		}
	}
	newList := model.Lists{}

	return view.RenderComponent(c, fiber.StatusOK, listviews.Index(cards, newList))
}

func (l *ListsHandlers) Edit(c *fiber.Ctx) error {
	var params struct {
		ID int64 `params:"id"`
	}
	if err := c.ParamsParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := l.repo.GetListById(c.Context(), currentUserID(c), params.ID)
	if err != nil {
		return err
	}

	return view.RenderComponent(c, fiber.StatusOK, listviews.Card(listviews.CardProps{
		EditingName: true,
		List:        result,
	}))
}

type CreateListRequest struct {
	Name string `json:"name" form:"name"`
}

func (l *ListsHandlers) Create(c *fiber.Ctx) error {
	var req CreateListRequest

	if err := c.BodyParser(&req); err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return view.RenderComponent(c, fiber.StatusUnprocessableEntity, listviews.CreateFailure(model.Lists{
			Name: req.Name,
		}, "name is required"))
	}

	result, err := l.repo.CreateList(c.Context(), currentUserID(c), req.Name)
	if err != nil {
		return err
	}

	return view.RenderComponent(c, fiber.StatusOK, listviews.CreateSuccess(listviews.CardProps{
		EditingName: false,
		List:        result,
	}))
}

type UpdateListRequest struct {
	Name string `json:"name" form:"name"`
}

func (l *ListsHandlers) Update(c *fiber.Ctx) error {
	var params struct {
		ID int64 `params:"id"`
	}
	if err := c.ParamsParser(&params); err != nil {
		return err
	}

	var req UpdateListRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	list, err := l.repo.UpdateListById(c.Context(), currentUserID(c), params.ID, req.Name)
	if err != nil {
		return err
	}

	return view.RenderComponent(c, fiber.StatusOK, listviews.Card(listviews.CardProps{
		EditingName: false,
		List:        list,
	}))
}

func (l *ListsHandlers) Delete(c *fiber.Ctx) error {
	var params struct {
		ID int64 `params:"id"`
	}
	if err := c.ParamsParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err := l.repo.DeleteListById(c.Context(), currentUserID(c), params.ID)
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
