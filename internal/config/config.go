// Package config 從環境變數載入服務設定
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config 保存所有服務設定，欄位皆由環境變數填入
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string        `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionSecret string        `env:"SESSION_SECRET,required,notEmpty"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ListenAddr    string        `env:"LISTEN_ADDR" envDefault:":8080"`
	WorkerCount   int           `env:"WORKER_COUNT" envDefault:"1"`
}

// Load 解析環境變數並回傳 Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
