package layoutcache

import "github.com/gotextlayout/textlayout/logging"

// Option configures a Cache at construction, following the same
// functional-option shape as shape.Option and textlayout.Option
// elsewhere in this module.
type Option func(*config)

type config struct {
	logger logging.Logger
}

func defaultConfig() config {
	return config{logger: logging.Nop{}}
}

// WithLogger attaches a diagnostic logger that traces evictions and
// purges. The default is logging.Nop, which traces nothing.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.logger = l }
}
