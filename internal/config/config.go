// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 服務設定，來源依序為預設值、CONFIG_FILE 指定的檔案、環境變數
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Worker    WorkerConfig
	Email     EmailConfig
	AMQP      AMQPConfig
}

type AppConfig struct {
	Env           string        // 執行環境: local / production
	LogLevel      string        // debug / info / warn / error
	HTTPAddr      string        // API 監聽位址
	CORSOrigins   []string      // 允許的來源，空值表示全部
	StatsCacheTTL time.Duration // 統計資料快取時間
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production") || strings.EqualFold(a.Env, "prod")
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	IdleTimeout    time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RateLimitConfig struct {
	Max    int           // 每個視窗允許的請求數，<= 0 表示關閉
	Window time.Duration // 視窗長度
}

type WorkerConfig struct {
	Count     int
	QueueSize int
}

type EmailConfig struct {
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
}

func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.SMTPUser != "" && e.FromEmail != ""
}

type AMQPConfig struct {
	URL   string
	Queue string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":5000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("STATS_CACHE_TTL", "30s")

	v.SetDefault("DB_POOL_MAX", 14)
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_IDLE_TIMEOUT", "30s")
	v.SetDefault("DB_POOL_CONNECT_TIMEOUT", "10s")

	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_EXPIRES_IN", "168h")

	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")

	v.SetDefault("WORKER_COUNT", 2)
	v.SetDefault("WORKER_QUEUE_SIZE", 100)

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("AMQP_QUEUE", "civic_events")
}

// Load 讀取設定並驗證必要欄位
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("APP_LOG_LEVEL"),
			HTTPAddr:      v.GetString("HTTP_ADDR"),
			CORSOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			StatsCacheTTL: v.GetDuration("STATS_CACHE_TTL"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("DATABASE_URL"),
			MaxConns:       v.GetInt("DB_POOL_MAX"),
			MinConns:       v.GetInt("DB_POOL_MIN"),
			IdleTimeout:    v.GetDuration("DB_POOL_IDLE_TIMEOUT"),
			ConnectTimeout: v.GetDuration("DB_POOL_CONNECT_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("JWT_EXPIRES_IN"),
		},
		RateLimit: RateLimitConfig{
			Max:    v.GetInt("RATE_LIMIT_MAX"),
			Window: v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Worker: WorkerConfig{
			Count:     v.GetInt("WORKER_COUNT"),
			QueueSize: v.GetInt("WORKER_QUEUE_SIZE"),
		},
		Email: EmailConfig{
			SMTPHost:  v.GetString("SMTP_HOST"),
			SMTPPort:  v.GetInt("SMTP_PORT"),
			SMTPUser:  v.GetString("SMTP_USER"),
			SMTPPass:  v.GetString("SMTP_PASS"),
			FromEmail: v.GetString("SMTP_FROM"),
		},
		AMQP: AMQPConfig{
			URL:   v.GetString("AMQP_URL"),
			Queue: v.GetString("AMQP_QUEUE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 回報第一個缺少或無效的設定
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("無效的 REDIS_DB: %d", c.Redis.DB)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("無效的 JWT_EXPIRES_IN: %s", c.Auth.TokenTTL)
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("無效的連線池設定: min=%d max=%d", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.RateLimit.Max > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("無效的 RATE_LIMIT_WINDOW: %s", c.RateLimit.Window)
	}
	if c.Worker.Count <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.Worker.Count)
	}
	if c.Worker.QueueSize < 0 {
		return fmt.Errorf("無效的 WORKER_QUEUE_SIZE: %d", c.Worker.QueueSize)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
