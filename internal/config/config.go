// Package config lee la configuración del proceso desde variables de entorno.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"lar-amigo/internal/platform/logger"
)

type Config struct {
	Port        string `env:"PORT"        envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Opcional: si viene, el catálogo se lee de Postgres. Si no, in-memory.
	DBDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME"   envDefault:"lar-amigo"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// Favoritos de una sesión sin uso durante este tiempo se descartan.
	FavoritesTTL time.Duration `env:"FAVORITES_TTL" envDefault:"2h"`

	// Número de WhatsApp del abrigo (solo dígitos, con código de país).
	ShelterWhatsApp string `env:"SHELTER_WHATSAPP" envDefault:"5511999999999"`

	SwaggerEnabled bool `env:"SWAGGER_ENABLED" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS must be > 0")
	}
	return cfg, nil
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) IsProduction() bool { return c.Environment == "production" }

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
