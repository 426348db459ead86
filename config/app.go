package config

type App struct {
	Port                 string `env:"APP_PORT" default:"8080"`
	DatabaseURL          string `env:"DATABASE_URL,required"`
	JWTSecret            string `env:"JWT_SECRET"`
	OperatorPasswordHash string `env:"OPERATOR_PASSWORD_HASH"`
	Env                  string `env:"APP_ENV" default:"dev"`
}

// AuthEnabled reports whether write routes should demand a bearer token.
// Both knobs have to be set; half a config keeps the API open.
func (a App) AuthEnabled() bool {
	return a.JWTSecret != "" && a.OperatorPasswordHash != ""
}
