// Package config contains the vkcall configuration.
//
// The configuration file is JSON extended with comments and trailing
// commas. Every field is optional and command line flags win over it.
package config

import (
	"encoding/json"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"github.com/vkbind/vk/pkg/vkapi"
)

// EnvAccessToken is the environment variable overriding the access token.
const EnvAccessToken = "VK_ACCESS_TOKEN"

// DefaultTimeoutSeconds is the default per-call timeout.
const DefaultTimeoutSeconds = 30

// Config is the vkcall configuration.
type Config struct {
	// AccessToken is the VK access token.
	AccessToken string `json:"access_token"`

	// APIVersion is the v parameter sent with every call.
	APIVersion string `json:"api_version"`

	// BaseURL is the base URL of the VK API.
	BaseURL string `json:"base_url"`

	// Lang is the lang parameter sent with every call.
	Lang string `json:"lang"`

	// Proxy is the optional proxy URL (http, https, or socks5).
	Proxy string `json:"proxy"`

	// TimeoutSeconds is the per-call timeout.
	TimeoutSeconds int64 `json:"timeout_seconds"`

	// UserAgent is the User-Agent header.
	UserAgent string `json:"user_agent"`
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

// ParseConfig returns config from JSON bytes.
func ParseConfig(b []byte) (*Config, error) {
	b, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}
	return &c, nil
}

// New returns the default config, used when there is no config file.
func New() *Config {
	c := &Config{}
	c.Default()
	return c
}

// Default config settings
func (c *Config) Default() error {
	if token := os.Getenv(EnvAccessToken); token != "" {
		c.AccessToken = token
	}
	if c.APIVersion == "" {
		c.APIVersion = vkapi.DefaultVersion
	}
	if c.BaseURL == "" {
		c.BaseURL = vkapi.DefaultBaseURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}

// ErrInvalidBaseURL indicates that base_url is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("invalid base_url")

// ErrInvalidTimeout indicates that timeout_seconds is negative.
var ErrInvalidTimeout = errors.New("invalid timeout_seconds")

// Validate the config file
func (c *Config) Validate() error {
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrap(ErrInvalidBaseURL, err.Error())
	}
	if (URL.Scheme != "http" && URL.Scheme != "https") || URL.Host == "" {
		return errors.Wrap(ErrInvalidBaseURL, c.BaseURL)
	}
	if c.Proxy != "" {
		if _, err := url.Parse(c.Proxy); err != nil {
			return errors.Wrap(err, "invalid proxy")
		}
	}
	if c.TimeoutSeconds < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Timeout returns the per-call timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
