package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, webhook endpoint, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Cookie      CookieConfig
	Voucher     VoucherConfig
	Webhook     WebhookConfig
	Activation  ActivationConfig
	Funnel      FunnelConfig
	ResultStore ResultStoreConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"true"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"funnel"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"funnel"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"true"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Session-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure        bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite      string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	VisitorMaxAge time.Duration `envconfig:"COOKIE_VISITOR_MAX_AGE" default:"8760h"`
}

type VoucherConfig struct {
	BaseURL string        `envconfig:"VOUCHER_BASE_URL" default:"https://api.magicpodsai.com/app"`
	Timeout time.Duration `envconfig:"VOUCHER_TIMEOUT" default:"10s"`
}

type WebhookConfig struct {
	URL     string        `envconfig:"WEBHOOK_URL" required:"true"`
	Timeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
}

type ActivationConfig struct {
	DebounceDelay       time.Duration `envconfig:"ACTIVATION_DEBOUNCE_DELAY" default:"700ms"`
	ContinuationBaseURL string        `envconfig:"ACTIVATION_CONTINUATION_BASE_URL" default:"https://app.magicpodsai.com/onboarding"`
	SessionIdleTTL      time.Duration `envconfig:"SESSION_IDLE_TTL" default:"2h"`
	SweepInterval       time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

type FunnelConfig struct {
	RegistrationPage string `envconfig:"FUNNEL_REGISTRATION_PAGE" default:"webinar-registration.html"`
	ConfirmationPage string `envconfig:"FUNNEL_CONFIRMATION_PAGE" default:"webinar-confirmation.html"`
	// PartnerPages maps a partner source to its confirmation page, e.g. "revoicer:webinar-confirmation-rv.html".
	PartnerPages map[string]string `envconfig:"FUNNEL_PARTNER_PAGES" default:"revoicer:webinar-confirmation-rv.html"`
}

type ResultStoreConfig struct {
	SessionTTL time.Duration `envconfig:"RESULTSTORE_SESSION_TTL" default:"12h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{
			Enabled: false,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			VisitorMaxAge: 24 * time.Hour,
		},
		Voucher: VoucherConfig{
			BaseURL: "http://localhost:18080/app",
			Timeout: 2 * time.Second,
		},
		Webhook: WebhookConfig{
			URL:     "http://localhost:18081/webhook",
			Timeout: time.Second,
		},
		Activation: ActivationConfig{
			DebounceDelay:       700 * time.Millisecond,
			ContinuationBaseURL: "https://app.example.com/onboarding",
			SessionIdleTTL:      time.Hour,
			SweepInterval:       time.Minute,
		},
		Funnel: FunnelConfig{
			RegistrationPage: "webinar-registration.html",
			ConfirmationPage: "webinar-confirmation.html",
			PartnerPages:     map[string]string{"revoicer": "webinar-confirmation-rv.html"},
		},
		ResultStore: ResultStoreConfig{
			SessionTTL: time.Hour,
		},
	}
}
