// @title         Peopledex API
// @version       0.1.0
// @description   Person records with substring search over nickname, name and stack

package main

import (
	"context"
	"os/signal"
	"syscall"

	"peopledex/internal/platform/config"
	"peopledex/internal/platform/logger"
	"peopledex/internal/platform/metrics"
	phttp "peopledex/internal/platform/net/http"
	"peopledex/internal/platform/store"

	"peopledex/internal/modkit/repokit"
	"peopledex/internal/services/api"
	peoplemod "peopledex/internal/services/people/module"
)

func main() {
	// service-scoped config (CORE_*)
	root := config.New()
	coreCfg := root.Prefix("CORE_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the memory driver needs no database; skip the pool entirely
	var st *store.Store
	if peoplemod.FromConfig(coreCfg).Driver != "memory" {
		var err error
		st, err = store.Open(
			ctx,
			store.Config{
				AppName: "peopledex-api",
				PG: store.PGConfig{
					Enabled:     true,
					URL:         pgCfg.MustString("DBURL"),
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", false),
				},
			},
			store.WithLogger(*l),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		repokit.MustGuard(ctx, st)
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(coreCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         coreCfg,
			Store:          st,
			Logger:         l,
			Metrics:        metrics.New(),
			EnableSwagger:  coreCfg.MayBool("API_SWAGGER", true),
			EnableProfiler: coreCfg.MayBool("API_PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
