package config

import "time"

// Config holds runtime settings for the device client.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	TokenFile          string
	RequestTimeout     time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = ".t4gged/profile.db"
	c.TokenFile = ".t4gged/identity.jwt"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig applies defaults, then JSON, then flags. Later sources take
// precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
