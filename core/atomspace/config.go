package atomspace

import "go.uber.org/zap"

// defaultDatabaseName is the identity label a Store carries when built
// with no explicit configuration. It has no effect on behavior.
const defaultDatabaseName = "das"

// Config configures a Store at construction time. UnorderedLinkTypes
// is per-instance rather than process-wide, so two Stores in the same
// process can canonicalize different link types independently.
type Config struct {
	DatabaseName        string
	UnorderedLinkTypes  map[string]struct{}
	Logger              *zap.SugaredLogger
}

// Option mutates a Config being built by NewConfig.
type Option func(*Config)

// WithDatabaseName overrides the default "das" identity label.
func WithDatabaseName(name string) Option {
	return func(c *Config) { c.DatabaseName = name }
}

// WithUnorderedLinkTypes declares which link types are canonicalized
// by sort order when computing pattern fingerprints.
func WithUnorderedLinkTypes(types ...string) Option {
	return func(c *Config) {
		if c.UnorderedLinkTypes == nil {
			c.UnorderedLinkTypes = make(map[string]struct{}, len(types))
		}
		for _, t := range types {
			c.UnorderedLinkTypes[t] = struct{}{}
		}
	}
}

// WithLogger attaches a logger. A Store built without one logs
// nothing (zap.NewNop()).
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Config) { c.Logger = logger }
}

// NewConfig builds a Config, applying opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		DatabaseName:       defaultDatabaseName,
		UnorderedLinkTypes: map[string]struct{}{},
		Logger:             zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return cfg
}

// isUnordered reports whether linkType is canonicalized by sort order.
func (c Config) isUnordered(linkType string) bool {
	_, ok := c.UnorderedLinkTypes[linkType]
	return ok
}
