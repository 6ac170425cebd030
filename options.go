package textlayout

import (
	"github.com/gotextlayout/textlayout/logging"
	"github.com/gotextlayout/textlayout/shape"
)

// Option configures an Engine at construction.
type Option func(*engineConfig)

type engineConfig struct {
	logger     logging.Logger
	shaperOpts []shape.Option
}

func defaultEngineConfig() engineConfig {
	return engineConfig{logger: logging.Nop{}}
}

// WithLogger attaches a diagnostic logger to the Engine and to the
// Shaper it owns. The default is logging.Nop, which traces nothing.
func WithLogger(l logging.Logger) Option {
	return func(c *engineConfig) { c.logger = l }
}

// WithDefaultLanguage sets the BCP-47 tag the Engine's Shaper falls
// back to when a GetValue call's Paint leaves Language empty. The
// default is "en".
func WithDefaultLanguage(tag string) Option {
	return func(c *engineConfig) {
		c.shaperOpts = append(c.shaperOpts, shape.WithDefaultLanguage(tag))
	}
}
