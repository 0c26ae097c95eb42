package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config interface {
	EnvConfig
	BackendConfig
	SessionConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type BackendConfig interface {
	GetBackendBaseURL() string
	GetPollInterval() time.Duration
	GetRequestTimeout() time.Duration
}

type SessionConfig interface {
	GetSessionDir() string
	GetSessionTTL() time.Duration
	GetRedisAddr() string
}

type SecurityConfig interface {
	GetSessionSecret() []byte
	GetLoginRatePerMinute() float64
	GetLoginBurst() int
}

type mainConfig struct {
	EnvVars
}

func New() (Config, error) {
	var vars EnvVars
	if err := cleanenv.ReadEnv(&vars); err != nil {
		return nil, fmt.Errorf("config.New read environment: %w", err)
	}
	return mainConfig{EnvVars: vars}, nil
}
