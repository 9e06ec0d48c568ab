package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

type APIConfig interface {
	// GetBaseURL returns the API origin including the /api prefix, e.g.
	// https://api.example.com/api. Login, refresh and all resource calls go
	// through it.
	GetBaseURL() string
	// GetTimeout is the per-request transport timeout. A timeout is treated
	// as a network-class failure, not an authentication rejection.
	GetTimeout() time.Duration
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}

// Static is a literal Config for tests and embedders that do not read the
// environment.
type Static struct {
	AppName string
	Env     string
	BaseURL string
	Timeout time.Duration
}

var _ Config = Static{}

func (s Static) GetAppName() string        { return s.AppName }
func (s Static) GetEnv() string            { return s.Env }
func (s Static) GetBaseURL() string        { return s.BaseURL }
func (s Static) GetTimeout() time.Duration { return s.Timeout }
