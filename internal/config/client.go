package config

import "time"

// ClientConfig points the ledger CLI at a running store service.
type ClientConfig struct {
	URL       string `yaml:"base-url"`
	TimeoutMs int64  `yaml:"timeout-ms"`
}

func (c *ClientConfig) BaseURL() string {
	return c.URL
}

func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
