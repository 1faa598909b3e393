package vfs

import (
	"github.com/fmkit/vfs/pkg/desktop"
	"github.com/fmkit/vfs/pkg/logging"
	"github.com/fmkit/vfs/pkg/mime"
	"github.com/fmkit/vfs/pkg/spawn"
)

// Provider bundles the collaborators needed to build and operate on
// descriptors: the content type database, the process launcher, and the
// language preference list for launcher entry localization. It replaces any
// notion of process-global state; consumers construct a provider, share it,
// and tear it down on their own terms. A provider is safe for concurrent
// use.
type Provider struct {
	// database is the content type database. Descriptors built by this
	// provider hold types interned by it, so descriptors from different
	// providers never compare as matching.
	database mime.Database
	// launcher starts processes for Execute.
	launcher spawn.Launcher
	// languages is the preference-ordered language list for launcher entry
	// localization.
	languages []string
	// logger carries debug traces and cleanup warnings.
	logger *logging.Logger
}

// Option configures a provider.
type Option func(*Provider)

// WithLauncher overrides the process launcher used by Execute.
func WithLauncher(launcher spawn.Launcher) Option {
	return func(p *Provider) {
		p.launcher = launcher
	}
}

// WithLanguages overrides the language preference list used for launcher
// entry localization, which otherwise derives from the process environment.
func WithLanguages(languages []string) Option {
	return func(p *Provider) {
		p.languages = languages
	}
}

// WithLogger attaches a logger to the provider. Operation failures are
// always returned to callers, never logged; the logger receives debug traces
// and cleanup warnings only.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// NewProvider creates a descriptor provider around the specified content
// type database.
func NewProvider(database mime.Database, options ...Option) *Provider {
	provider := &Provider{
		database:  database,
		launcher:  spawn.NewLauncher(),
		languages: desktop.Languages(),
	}
	for _, option := range options {
		option(provider)
	}
	return provider
}
