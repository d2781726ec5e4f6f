package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	RedisAddr string // レート制限用Redis（空なら無効）
	FEURL     string // フロントURL（CORSで使う。空なら全許可）
}

// Loadは環境変数から設定を組み立てる。
func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		FEURL:     os.Getenv("FE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DBConfigはPostgresの接続設定。
// JWT_SECRET不要のバイナリ（seed）からも使うのでConfigとは分けている。
type DBConfig struct {
	URL string // DATABASE_URL。設定されていれば他のフィールドより優先

	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LoadDBは環境変数からDB設定を組み立てる。必須項目は無く、全てローカル開発向けのデフォルトを持つ。
func LoadDB() DBConfig {
	return DBConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getenv("POSTGRES_HOST", "localhost"),
		Port:     getenv("POSTGRES_PORT", "5432"),
		User:     getenv("POSTGRES_USER", "postgres"),
		Password: getenv("POSTGRES_PASSWORD", "postgres"),
		Name:     getenv("POSTGRES_DB", "shop"),
		SSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSNはgormに渡す接続文字列を返す。
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
