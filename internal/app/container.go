// Package app wires configuration, observability, provider adapters, and the
// dispatcher into one dependency container for the HTTP layer.
package app

import (
	"context"
	"fmt"

	"github.com/voiceagent/gateway/internal/config"
	"github.com/voiceagent/gateway/internal/dispatch"
	"github.com/voiceagent/gateway/internal/observability"
	"github.com/voiceagent/gateway/internal/providers"
)

// Container aggregates runtime dependencies for handlers.
type Container struct {
	Config        *config.Config
	Registry      *providers.Registry
	Dispatcher    *dispatch.Dispatcher
	Observability *observability.Provider
}

// NewContainer builds the dependency container. Adapter construction fails
// fast here when a provider credential is missing.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	obsProvider, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("setup observability: %w", err)
	}

	registry, err := providers.NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("init provider registry: %w", err)
	}

	return &Container{
		Config:        cfg,
		Registry:      registry,
		Dispatcher:    dispatch.New(cfg, registry, obsProvider),
		Observability: obsProvider,
	}, nil
}

// Shutdown flushes observability exporters.
func (c *Container) Shutdown(ctx context.Context) error {
	if c == nil || c.Observability == nil {
		return nil
	}
	return c.Observability.Shutdown(ctx)
}
