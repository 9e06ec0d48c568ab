package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	baseURLVar   = "BUDGET_API_BASE_URL"
	timeoutMsVar = "BUDGET_API_TIMEOUT_MS"
	appNameVar   = "APP_NAME"
	envVar       = "ENV"
)

var envOnce sync.Once

// EnvVars reads configuration from the environment through viper.
type EnvVars struct{}

var _ Config = EnvVars{}

func initEnv() {
	envOnce.Do(func() {
		viper.AutomaticEnv()
		viper.SetDefault(baseURLVar, "http://localhost:3000/api")
		viper.SetDefault(timeoutMsVar, 5000)
		viper.SetDefault(appNameVar, "Budget Client")
		viper.SetDefault(envVar, "DEV")
	})
}

func (e EnvVars) GetBaseURL() string {
	initEnv()
	return viper.GetString(baseURLVar)
}

func (e EnvVars) GetTimeout() time.Duration {
	initEnv()
	return time.Duration(viper.GetInt(timeoutMsVar)) * time.Millisecond
}

func (e EnvVars) GetAppName() string {
	initEnv()
	return viper.GetString(appNameVar)
}

func (e EnvVars) GetEnv() string {
	initEnv()
	return viper.GetString(envVar)
}
