// Package reposcout wires the GitHub repository search client from
// environment configuration.
package reposcout

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kitbuilder587/reposcout/internal/config"
	"github.com/kitbuilder587/reposcout/internal/metrics"
	"github.com/kitbuilder587/reposcout/search/github"
)

// NewFromEnv loads configuration from the environment and builds a client
// with a zap logger and prometheus metrics registered in reg. A nil reg
// means prometheus.DefaultRegisterer. Mount MetricsHandler with the matching
// gatherer to expose the search metrics.
func NewFromEnv(reg prometheus.Registerer) (*github.Client, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	m := metrics.New(cfg.Metrics.Namespace, reg)

	client := github.New(github.Config{
		BaseURL:   cfg.GitHub.BaseURL,
		Timeout:   cfg.GitHub.Timeout,
		UserAgent: cfg.GitHub.UserAgent,
	}, logger, m)

	logger.Debug("github search client ready",
		zap.String("base_url", cfg.GitHub.BaseURL),
		zap.Duration("timeout", cfg.GitHub.Timeout),
	)

	return client, logger, nil
}

// MetricsHandler serves the metrics gathered by g, typically the registry
// passed to NewFromEnv. A nil g serves the default registry.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return metrics.Handler(g)
}
