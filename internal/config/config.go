package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	App         AppConfig         `toml:"app"`
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Redis       RedisConfig       `toml:"redis"`
	Auth        AuthConfig        `toml:"auth"`
	Geocoding   GeocodingConfig   `toml:"geocoding"`
	MercadoPago MercadoPagoConfig `toml:"mercadopago"`
	CORS        CORSConfig        `toml:"cors"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
}

type AppConfig struct {
	Timezone string `toml:"timezone"` // IANA, в ней интерпретируются дата и время турнос
}

// Location возвращает часовой пояс приложения
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"` // переопределяется DB_PASSWORD
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq; значения в кавычках
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(c.Host), c.Port, quoteDSNValue(c.User), quoteDSNValue(c.Password),
		quoteDSNValue(c.DBName), quoteDSNValue(c.SSLMode))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// URL строка подключения в формате URL (для golang-migrate)
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"` // переопределяется REDIS_PASSWORD
	DB       int    `toml:"db"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"` // переопределяется JWT_SECRET
	Issuer    string `toml:"issuer"`     // пустая строка = не проверять
}

type GeocodingConfig struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
	Timeout   int    `toml:"timeout"`   // секунды
	CacheTTL  int    `toml:"cache_ttl"` // секунды
}

type MercadoPagoConfig struct {
	APIURL         string `toml:"api_url"`
	CheckoutDomain string `toml:"checkout_domain"`
	AccessToken    string `toml:"access_token"` // переопределяется MERCADOPAGO_ACCESS_TOKEN
	SuccessURL     string `toml:"success_url"`
	FailureURL     string `toml:"failure_url"`
	PendingURL     string `toml:"pending_url"`
	Timeout        int    `toml:"timeout"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает TOML-файл конфигурации
// Перед этим подгружает .env (если есть), секреты берутся из окружения
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (без .env), используется в тестах и утилитах
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.MercadoPago.AccessToken, "MERCADOPAGO_ACCESS_TOKEN")

	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.App.Timezone, "America/Argentina/Buenos_Aires")

	setDefaultInt(&c.Server.HTTPPort, 8080)
	setDefaultInt(&c.Server.ReadTimeout, 10)
	setDefaultInt(&c.Server.WriteTimeout, 15)
	setDefaultInt(&c.Server.IdleTimeout, 60)
	setDefaultInt(&c.Server.ShutdownTimeout, 10)

	setDefaultInt(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefaultInt(&c.Database.MaxOpenConns, 25)
	setDefaultInt(&c.Database.MaxIdleConns, 5)
	setDefaultInt(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.ServiceName, "turnit")
	setDefault(&c.Metrics.Path, "/metrics")

	setDefault(&c.Geocoding.BaseURL, "https://nominatim.openstreetmap.org")
	setDefault(&c.Geocoding.UserAgent, "TurnIt/1.0")
	setDefaultInt(&c.Geocoding.Timeout, 5)
	setDefaultInt(&c.Geocoding.CacheTTL, 7*24*60*60)

	setDefault(&c.MercadoPago.APIURL, "https://api.mercadopago.com")
	setDefault(&c.MercadoPago.CheckoutDomain, "www.mercadopago.com.ar")
	setDefaultInt(&c.MercadoPago.Timeout, 10)

	if c.RateLimit.RPS <= 0 {
		c.RateLimit.RPS = 5
	}
	setDefaultInt(&c.RateLimit.Burst, 10)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func setDefault(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = value
	}
}

func setDefaultInt(dst *int, value int) {
	if *dst <= 0 {
		*dst = value
	}
}
