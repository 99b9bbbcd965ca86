package main

//
// Client construction
//

import (
	"io"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkbind/vk/internal/config"
	"github.com/vkbind/vk/internal/netxlite"
	"github.com/vkbind/vk/pkg/vkapi"
	"github.com/vkbind/vk/pkg/vkapi/vkmetrics"
)

// session contains the state shared by the calls of a command.
type session struct {
	client   *vkapi.Client
	config   *config.Config
	logger   *log.Logger
	registry *prometheus.Registry
}

// loadConfig loads the config file, if any, and applies the flags.
func loadConfig(options *Options) (*config.Config, error) {
	cfg := config.New()
	if options.ConfigFile != "" {
		var err error
		if cfg, err = config.ReadConfig(options.ConfigFile); err != nil {
			return nil, err
		}
	}
	if options.Token != "" {
		cfg.AccessToken = options.Token
	}
	if options.APIVersion != "" {
		cfg.APIVersion = options.APIVersion
	}
	if options.BaseURL != "" {
		cfg.BaseURL = options.BaseURL
	}
	if options.Lang != "" {
		cfg.Lang = options.Lang
	}
	if options.Proxy != "" {
		cfg.Proxy = options.Proxy
	}
	if options.TimeoutSeconds != 0 {
		cfg.TimeoutSeconds = options.TimeoutSeconds
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating options")
	}
	return cfg, nil
}

// newSession creates a new session logging to stderr.
func newSession(options *Options, stderr io.Writer) (*session, error) {
	cfg, err := loadConfig(options)
	if err != nil {
		return nil, err
	}
	logger := newLogger(stderr, options.Verbose)
	proxyURL, err := netxlite.ParseProxyURL(cfg.Proxy)
	if err != nil {
		return nil, errors.Wrap(err, "parsing proxy URL")
	}
	httpClient, err := netxlite.NewHTTPClient(proxyURL)
	if err != nil {
		return nil, errors.Wrap(err, "creating HTTP client")
	}
	registry := prometheus.NewRegistry()
	collector, err := vkmetrics.New(registry)
	if err != nil {
		return nil, errors.Wrap(err, "registering metrics")
	}
	client := vkapi.NewClient(cfg.AccessToken)
	client.BaseURL = cfg.BaseURL
	client.HTTPClient = httpClient
	client.Language = cfg.Lang
	client.Logger = logger
	client.Observer = &callObserver{collector: collector, logger: logger}
	client.Version = cfg.APIVersion
	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}
	sess := &session{
		client:   client,
		config:   cfg,
		logger:   logger,
		registry: registry,
	}
	sess.logSettings()
	return sess, nil
}

// logSettings logs the effective settings without the access token.
func (s *session) logSettings() {
	s.logger.WithFields(log.Fields{
		"type":         "table",
		"access_token": redact(s.config.AccessToken),
		"api_version":  s.config.APIVersion,
		"base_url":     s.config.BaseURL,
		"lang":         s.config.Lang,
		"proxy":        s.config.Proxy,
		"timeout":      s.config.Timeout().String(),
	}).Debug("settings")
}

// redact hides a secret, if set.
func redact(secret string) string {
	if secret == "" {
		return "(none)"
	}
	return "[scrubbed]"
}

// callObserver logs each call and updates the metrics.
type callObserver struct {
	collector *vkmetrics.Collector
	logger    log.Interface
}

var _ vkapi.Observer = &callObserver{}

// OnCall implements vkapi.Observer.
func (o *callObserver) OnCall(method string, elapsed time.Duration, err error) {
	o.collector.OnCall(method, elapsed, err)
	o.logger.WithFields(log.Fields{
		"elapsed": elapsed.Round(time.Millisecond).String(),
		"outcome": vkmetrics.Outcome(err),
	}).Debugf("%s", method)
}

// logStats logs the number of calls per method and outcome.
func (s *session) logStats() {
	families, err := s.registry.Gather()
	if err != nil {
		s.logger.Warnf("cannot gather metrics: %s", err.Error())
		return
	}
	fields := log.Fields{"type": "table"}
	for _, family := range families {
		if family.GetName() != vkmetrics.CallsTotalName {
			continue
		}
		for _, metric := range family.GetMetric() {
			var method, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "method":
					method = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			fields[method+" "+outcome] = int64(metric.GetCounter().GetValue())
		}
	}
	s.logger.WithFields(fields).Info("calls")
}
