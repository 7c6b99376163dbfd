package config

type App struct {
	Port    string `env:"APP_PORT" envDefault:"8080"`
	DataDir string `env:"DATA_DIR" envDefault:"dados"`

	// The session signing secret and admin credentials come from the
	// environment, never from a source literal.
	SessionSecret string `env:"SESSION_SECRET,required"`

	AdminLogin    string `env:"ADMIN_LOGIN" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	Env string `env:"APP_ENV" envDefault:"dev"`
}
