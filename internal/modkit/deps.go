// Package modkit provides module wiring and core deps
package modkit

import (
	"peopledex/internal/modkit/repokit"
	"peopledex/internal/platform/config"
	"peopledex/internal/platform/logger"
	"peopledex/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	PG      repokit.TxRunner
	Metrics *metrics.Metrics
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
