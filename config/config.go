package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Entitlement EntitlementConfig `mapstructure:"entitlement"`
	AI          AIConfig          `mapstructure:"ai"`
	Reminder    ReminderConfig    `mapstructure:"reminder"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// Timezone 判断跨日、跨月以及提醒时间所用的时区
	Timezone string `mapstructure:"timezone"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // mysql | sqlite
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	SQLitePath   string `mapstructure:"sqlite_path"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

type EntitlementConfig struct {
	Backend   string `mapstructure:"backend"` // memory | redis | database
	KeyPrefix string `mapstructure:"key_prefix"`
	// PreviewUnlocked 免费套餐临时开放手相、面相、易经、星盘、数字命理
	PreviewUnlocked bool `mapstructure:"preview_unlocked"`
}

type AIConfig struct {
	Model          string  `mapstructure:"model"`
	BaseURL        string  `mapstructure:"base_url"`
	Temperature    float32 `mapstructure:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	// APIKey 只从环境变量读取，不写入配置文件
	APIKey string `mapstructure:"-" env:"OPENAI_API_KEY"`
}

type ReminderConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds"`
}

// Timeout AI 调用超时
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Location 解析服务时区，未配置时使用本地时区
func (c ServerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite_path", "soultria.db")
	v.SetDefault("jwt.expire_hours", 168)
	v.SetDefault("entitlement.backend", "database")
	v.SetDefault("ai.model", "gpt-4o")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 800)
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("reminder.interval_seconds", 60)
}

func Load(configPath string) (*Config, error) {
	// 优先读取 config.local.yaml（包含真实密钥，不提交到 git）
	localConfigPath := filepath.Join(filepath.Dir(configPath), "config.local.yaml")
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 环境变量覆盖，例如 SERVER_PORT
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.AI); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
