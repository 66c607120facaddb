package config

import (
	"time"
)

type DB struct {
	URL          string `envconfig:"URL" validate:"required"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gt=0"`
	AutoMigrate  bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

type Jwt struct {
	AccessSecret string        `envconfig:"ACCESS_SECRET" validate:"required"`
	Expiry       time.Duration `envconfig:"EXPIRY" default:"24h" validate:"gt=0"`
}

type Redis struct {
	URL          string        `envconfig:"URL" validate:"omitempty,url"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"moneytracker:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

// Enabled reports whether a Redis backend was configured.
func (r Redis) Enabled() bool {
	return r.URL != ""
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100" validate:"gt=0"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m" validate:"gt=0"`
}

type Cors struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

type Log struct {
	Level      string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error fatal"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[moneytracker]"`
}

type Server struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	// ProxyHeader is honoured only for requests arriving from TrustedProxies.
	ProxyHeader     string        `envconfig:"PROXY_HEADER" default:"X-Forwarded-For"`
	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES" validate:"dive,ip|cidr"`
}

type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development" validate:"oneof=development test production"`
	Server    Server    `envconfig:"SERVER"`
	Log       Log       `envconfig:"LOG"`
	DB        DB        `envconfig:"DATABASE"`
	Jwt       Jwt       `envconfig:"JWT"`
	Redis     Redis     `envconfig:"REDIS"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Cors      Cors      `envconfig:"CORS"`
}

// IsDevelopment reports whether the app runs with APP_ENV=development.
func (a *App) IsDevelopment() bool {
	return a.Env == "development"
}
