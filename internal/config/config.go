package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	RunAddress  string        `env:"RUN_ADDRESS"`
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`

	// URL фронтенда: ссылки в письмах и редирект после OAuth.
	ClientURL string `env:"CLIENT_URL"`

	// SMTP. Пустой SMTPHost — письма уходят только в лог.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	EmailFrom    string `env:"EMAIL_FROM"`

	// OAuth-провайдеры. Пустой client id отключает провайдера.
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GithubClientID     string `env:"GITHUB_CLIENT_ID"`
	GithubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
	// Базовый URL самого сервиса для callback-ов провайдеров.
	OAuthRedirectBase string `env:"OAUTH_REDIRECT_BASE"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "срок жизни сессионного токена")
	flag.StringVar(&cfg.ClientURL, "client-url", cfg.ClientURL, "базовый URL фронтенда")
	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "inventory.db"
	}
	if cfg.ClientURL == "" {
		cfg.ClientURL = "http://localhost:3000"
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "MY INVENTORY <no-reply@localhost>"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}

	// RunAddress должен быть в виде "host:port", иначе дефолт.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddress) {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.OAuthRedirectBase == "" {
		cfg.OAuthRedirectBase = "http://" + cfg.RunAddress
	}

	return cfg
}
