package constants

const (
	EnvDevelopment      = "development"
	EnvProduction       = "production"
	EnvTest             = "test"
	CsrfInputName       = "_csrf"
	CsrfTokenContextKey = "csrf.token"
	LoggedInSessionKey  = "auth.logged_in"
	UserIDSessionKey    = "auth.user_id"
	UsernameSessionKey  = "auth.username"
)
