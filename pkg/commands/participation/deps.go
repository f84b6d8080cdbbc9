// Package participation provides CLI commands to participate in and convert sixpack experiments.
package participation

import (
	"context"

	"github.com/seatgeek/sixpack-go/config"
	"github.com/seatgeek/sixpack-go/experiment"
	"github.com/seatgeek/sixpack-go/sixpack"
)

// Client is the subset of the sixpack client used by the commands.
type Client interface {
	experiment.ParticipationService

	ClientID() string
	Convert(ctx context.Context, experimentName, kpi string) (*sixpack.Conversion, error)
}

// ConfigLoaderFunc loads the client configuration from a file path.
type ConfigLoaderFunc func(filePath string) (*config.Config, error)

// ClientFactoryFunc creates a client from the loaded configuration.
type ClientFactoryFunc func(cfg config.SixpackConfig, opts ...sixpack.Option) (Client, error)

// DefinitionsLoaderFunc builds the experiments declared in a definitions file.
type DefinitionsLoaderFunc func(filePath string, svc experiment.ParticipationService) ([]*experiment.Experiment, error)

// defaultClientFactory is the production implementation that creates a sixpack HTTP client.
func defaultClientFactory(cfg config.SixpackConfig, opts ...sixpack.Option) (Client, error) {
	return sixpack.NewClientFromConfig(cfg, opts...)
}

// Deps holds the injectable dependencies for the participation commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the client configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// ClientFactory creates the sixpack client.
	// Default: sixpack.NewClientFromConfig
	ClientFactory ClientFactoryFunc

	// DefinitionsLoader loads experiment definitions.
	// Default: experiment.LoadDefinitions
	DefinitionsLoader DefinitionsLoaderFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.ClientFactory == nil {
		d.ClientFactory = defaultClientFactory
	}
	if d.DefinitionsLoader == nil {
		d.DefinitionsLoader = experiment.LoadDefinitions
	}
}
