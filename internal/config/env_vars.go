package config

import "time"

// EnvVars holds every environment-sourced setting. Defaults match a local
// development setup against the hostel backend on port 5000.
type EnvVars struct {
	Port    string `env:"PORT" env-default:":8080"`
	AppName string `env:"APP_NAME" env-default:"Hostel Dashboard"`
	Env     string `env:"ENV" env-default:"DEV"`

	BackendBaseURL        string `env:"HOSTEL_API_BASE_URL" env-default:"http://localhost:5000/api"`
	PollIntervalSeconds   int    `env:"POLL_INTERVAL_SECONDS" env-default:"5"`
	RequestTimeoutSeconds int    `env:"REQUEST_TIMEOUT_SECONDS" env-default:"10"`

	SessionDir      string `env:"SESSION_DIR" env-default:"./data/sessions"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" env-default:"168"`
	RedisAddr       string `env:"REDIS_ADDR" env-default:""`

	SessionSecret      string  `env:"SESSION_SECRET" env-default:"dev-only-session-secret"`
	LoginRatePerMinute float64 `env:"LOGIN_RATE_PER_MINUTE" env-default:"10"`
	LoginBurst         int     `env:"LOGIN_BURST" env-default:"5"`
}

func (e EnvVars) GetPort() string {
	return e.Port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

func (e EnvVars) GetBackendBaseURL() string {
	return e.BackendBaseURL
}

func (e EnvVars) GetPollInterval() time.Duration {
	return time.Duration(e.PollIntervalSeconds) * time.Second
}

func (e EnvVars) GetRequestTimeout() time.Duration {
	return time.Duration(e.RequestTimeoutSeconds) * time.Second
}

func (e EnvVars) GetSessionDir() string {
	return e.SessionDir
}

func (e EnvVars) GetSessionTTL() time.Duration {
	return time.Duration(e.SessionTTLHours) * time.Hour
}

func (e EnvVars) GetRedisAddr() string {
	return e.RedisAddr
}

func (e EnvVars) GetSessionSecret() []byte {
	return []byte(e.SessionSecret)
}

func (e EnvVars) GetLoginRatePerMinute() float64 {
	return e.LoginRatePerMinute
}

func (e EnvVars) GetLoginBurst() int {
	return e.LoginBurst
}
