package tui

import (
	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/orders"
	"github.com/trackinhq/trackin/internal/session"
	"github.com/trackinhq/trackin/internal/store"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Gateway    gateway.Service
	Session    *session.Session
	Store      *store.Store
	Controller *orders.Controller
	Width      int
	Height     int
	ShowHelp   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithGateway sets the remote service client.
func WithGateway(gw gateway.Service) Option {
	return func(c *Config) {
		c.Gateway = gw
	}
}

// WithSession sets the local session state.
func WithSession(sess *session.Session) Option {
	return func(c *Config) {
		c.Session = sess
	}
}

// WithStore sets the record store.
func WithStore(st *store.Store) Option {
	return func(c *Config) {
		c.Store = st
	}
}

// WithController sets the order lifecycle controller.
func WithController(ctrl *orders.Controller) Option {
	return func(c *Config) {
		c.Controller = ctrl
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}
