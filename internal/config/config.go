package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Porta       string
	JWTSecret   string
	CORSOrigens []string
	LogLevel    slog.Level
	DB          DBConfig
}

type DBConfig struct {
	Host     string
	Porta    string
	Usuario  string
	Senha    string
	Nome     string
	SSLMode  string
	TimeZone string
}

// Load carrega o .env (se existir) e monta a configuração a partir das
// variáveis de ambiente, com defaults de desenvolvimento.
func Load() (Config, error) {
	// .env ausente não é erro: em produção tudo vem do ambiente
	_ = godotenv.Load()

	cfg := Config{
		Porta:       getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigens: strings.Split(getEnv("CORS_ORIGENS", "http://localhost:3000"), ","),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Porta:    getEnv("DB_PORT", "5432"),
			Usuario:  getEnv("DB_USER", "postgres"),
			Senha:    getEnv("DB_PASSWORD", "postgres"),
			Nome:     getEnv("DB_NAME", "mogo"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "America/Sao_Paulo"),
		},
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET não definida")
	}
	return cfg, nil
}

// DSN monta a string de conexão do Postgres.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.Usuario, d.Senha, d.Nome, d.Porta, d.SSLMode, d.TimeZone)
}

func getEnv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

func parseLevel(valor string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(valor)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
