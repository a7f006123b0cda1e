package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisRateLimitPrefix   string
	JWTSecret              string
	TokenTTLHours          int
	BcryptCost             int
	ClientURL              string
	LogLevel               string
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	var redisAddr string
	if redisHost := getEnv("REDIS_HOST", ""); redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	cfg := Config{
		AppURL:               fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:       getEnv("DATABASE_DRIVER", DriverSQLite),
		DatabaseDSN:          getEnv("DATABASE_DSN", "tasks.db"),
		RedisAddr:            redisAddr,
		RedisRateLimitPrefix: getEnv("REDIS_RATE_LIMIT_PREFIX", "rate_limit"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		ClientURL:            getEnv("CLIENT_URL", "http://localhost:3000"),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
	}

	ints := []struct {
		key  string
		def  int
		dest *int
	}{
		{"RATE_LIMIT_PER_MINUTE", 60, &cfg.RateLimit},
		{"TOKEN_TTL_HOURS", 24, &cfg.TokenTTLHours},
		{"BCRYPT_COST", 10, &cfg.BcryptCost},
		{"SHUTDOWN_TIMEOUT_SECONDS", 20, &cfg.ShutdownTimeoutSeconds},
	}
	for _, v := range ints {
		i, err := getEnvAsInt(v.key, v.def)
		if err != nil {
			return Config{}, err
		}
		*v.dest = i
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTLHours <= 0 {
		return errors.New("TOKEN_TTL_HOURS must be greater than 0")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
