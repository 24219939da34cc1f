package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	TikTok      TikTok      `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	PostHog     PostHog     `mapstructure:",squash"`
	MetricsSync MetricsSync `mapstructure:",squash"`
	RateLimit   RateLimit   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

type Auth struct {
	Secret          string        `mapstructure:"auth_secret"`
	TokenExpiration time.Duration `mapstructure:"auth_token_expiration"`
}

type TikTok struct {
	BaseURL string `mapstructure:"tiktok_base_url"`
	Version string `mapstructure:"tiktok_version"`
	URL     string `mapstructure:"-"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
	URL     string `mapstructure:"-"`
}

type PostHog struct {
	BaseURL      string `mapstructure:"posthog_base_url"`
	DefaultEvent string `mapstructure:"posthog_default_event"`
}

type MetricsSync struct {
	CronSchedule         string        `mapstructure:"metrics_sync_cron"`
	Enabled              bool          `mapstructure:"metrics_sync_enabled"`
	MaxConcurrentTenants int           `mapstructure:"metrics_sync_max_concurrent_tenants"`
	RequestDelaySeconds  int           `mapstructure:"metrics_sync_request_delay_seconds"`
	IncrementalDays      int           `mapstructure:"metrics_sync_incremental_days"`
	FirstSyncDays        int           `mapstructure:"metrics_sync_first_sync_days"`
	LockStaleness        time.Duration `mapstructure:"metrics_sync_lock_staleness"`
}

type RateLimit struct {
	RequestsPerMinute int `mapstructure:"rate_limit_requests_per_minute"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/profitsync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_EXPIRATION", "24h")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api")
	viper.SetDefault("TIKTOK_VERSION", "v1.3")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("POSTHOG_BASE_URL", "https://app.posthog.com")
	viper.SetDefault("POSTHOG_DEFAULT_EVENT", "purchase")

	// Defaults da sincronização de métricas
	viper.SetDefault("METRICS_SYNC_CRON", "0 */4 * * *")            // A cada 4 horas
	viper.SetDefault("METRICS_SYNC_ENABLED", true)                  // Habilitar sincronização agendada
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_TENANTS", 3)      // 3 tenants concorrentes
	viper.SetDefault("METRICS_SYNC_REQUEST_DELAY_SECONDS", 0)       // Sem atraso entre requisições
	viper.SetDefault("METRICS_SYNC_INCREMENTAL_DAYS", 3)            // Janela incremental de 3 dias
	viper.SetDefault("METRICS_SYNC_FIRST_SYNC_DAYS", 30)            // Backfill de 30 dias na primeira sincronização
	viper.SetDefault("METRICS_SYNC_LOCK_STALENESS", "10m")          // Lease expira após 10 minutos
	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 60)          // Por plataforma, compartilhado entre instâncias

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.TikTok.URL = fmt.Sprintf("%s/%s", config.TikTok.BaseURL, config.TikTok.Version)
	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env via godotenv quando presente
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
