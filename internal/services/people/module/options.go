package module

import (
	"peopledex/internal/platform/config"
)

// Options controls people storage selection and query behavior
type Options struct {
	// Driver picks the storage backend, "postgres" or "memory"
	Driver string

	// SearchLimit caps the number of rows a search may return
	SearchLimit int
}

// FromConfig reads PEOPLE_* values under cfg's namespace; main passes the
// CORE_ scoped Conf, so the process env keys are CORE_PEOPLE_DRIVER and
// CORE_PEOPLE_SEARCH_LIMIT
func FromConfig(cfg config.Conf) Options {
	pc := cfg.Prefix("PEOPLE_")
	return Options{
		Driver:      pc.MayString("DRIVER", "postgres"),
		SearchLimit: pc.MayInt("SEARCH_LIMIT", 50),
	}
}
