package config

type Config struct {
	Environment  Environment
	Log          Log
	HTTP         HTTPServer
	DatabasePath string `env:"DATABASE_PATH" envDefault:"parlour.db"`

	JWT      JWT      `envPrefix:"JWT_"`
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	SMTP     SMTP     `envPrefix:"SMTP_"`

	// Parlour owner's inbox for appointment and enrollment notifications.
	OwnerEmail string `env:"OWNER_EMAIL"`
}

type Razorpay struct {
	KeyID     string `env:"KEY_ID"`
	KeySecret string `env:"KEY_SECRET"`
}

type JWT struct {
	Secret   string `env:"SECRET"`
	TTLHours int    `env:"TTL_HOURS" envDefault:"168"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	FromName string `env:"FROM_NAME" envDefault:"Beauty Parlour"`
	FromAddr string `env:"FROM_ADDR"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
