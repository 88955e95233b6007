package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
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
	Adsterra    Adsterra    `mapstructure:",squash"`
	Currency    Currency    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	RevenueSync RevenueSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Adsterra agrupa a configuração da API de estatísticas de publisher.
type Adsterra struct {
	StatsURL     string        `mapstructure:"adsterra_stats_url"`
	Timeout      time.Duration `mapstructure:"adsterra_timeout"`
	LookbackDays int           `mapstructure:"adsterra_lookback_days"`
	TopCountries int           `mapstructure:"adsterra_top_countries"`
}

// Currency guarda a taxa fixa USD -> PKR.
type Currency struct {
	PKRRate float64 `mapstructure:"pkr_rate"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret     string        `mapstructure:"auth_secret"`
	SessionTTL time.Duration `mapstructure:"auth_session_ttl"`
	// AdminPINs no formato "admin_id:bcrypt_hash,admin_id:bcrypt_hash"
	AdminPINs string            `mapstructure:"admin_pins"`
	PINHashes map[string]string `mapstructure:"-"`
}

type RevenueSync struct {
	CronSchedule      string `mapstructure:"revenue_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"revenue_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"revenue_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,https://partner-revenue-dashboard.vercel.app")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/partners")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("ADSTERRA_STATS_URL", "https://api3.adsterratools.com/publisher/stats.json")
	viper.SetDefault("ADSTERRA_TIMEOUT", "30s")
	viper.SetDefault("ADSTERRA_LOOKBACK_DAYS", 365) // Janela de um ano terminando ontem
	viper.SetDefault("ADSTERRA_TOP_COUNTRIES", 5)

	viper.SetDefault("PKR_RATE", 220)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_SESSION_TTL", "20m")
	viper.SetDefault("ADMIN_PINS", "")

	// Defaults para sincronização de receita
	viper.SetDefault("REVENUE_SYNC_CRON", "0 4 * * *")       // Todos os dias às 4h da manhã
	viper.SetDefault("REVENUE_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 parceiros em paralelo
	viper.SetDefault("REVENUE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Auth.PINHashes, err = ParseAdminPINs(config.Auth.AdminPINs)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseAdminPINs converte "admin:hash,admin2:hash2" em um mapa admin -> hash.
func ParseAdminPINs(raw string) (map[string]string, error) {
	pins := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		adminID, hash, ok := strings.Cut(pair, ":")
		if !ok || adminID == "" || hash == "" {
			return nil, fmt.Errorf("entrada inválida em ADMIN_PINS: %q", pair)
		}
		pins[adminID] = hash
	}

	return pins, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
