package shape

import "github.com/gotextlayout/textlayout/logging"

// Option configures a Shaper at construction, in the same functional-
// option shape as layoutcache.Option and textlayout.Option elsewhere in
// this module.
type Option func(*config)

type config struct {
	defaultLanguage string
	logger          logging.Logger
}

func defaultConfig() config {
	return config{defaultLanguage: "en", logger: logging.Nop{}}
}

// WithDefaultLanguage sets the BCP-47 tag a Request falls back to when
// its Language field is empty. The default is "en".
func WithDefaultLanguage(tag string) Option {
	return func(c *config) { c.defaultLanguage = tag }
}

// WithLogger attaches a diagnostic logger that traces face-cache
// purges. The default is logging.Nop, which traces nothing.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.logger = l }
}
