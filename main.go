package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/austinblanke891/metrodupe/assets"
	"github.com/austinblanke891/metrodupe/internal/catalog"
	"github.com/austinblanke891/metrodupe/internal/config"
	"github.com/austinblanke891/metrodupe/internal/game"
	"github.com/austinblanke891/metrodupe/internal/httpserver"
	"github.com/austinblanke891/metrodupe/internal/projection"
	"github.com/austinblanke891/metrodupe/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load station catalog")
	}
	if cat.Empty() {
		log.Warn().Msg("station catalog is empty; rounds cannot start until a catalog is provided")
	}
	log.Info().Int("stations", cat.Len()).Msg("catalog loaded")

	render := game.DefaultRenderConfig(projection.MapSize{BaseW: cfg.MapBaseW, BaseH: cfg.MapBaseH})
	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, cat, render, cfg.DailySalt, cfg.ClientOrigin)

	hs := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Router()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("starting metrodupe server")
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		return hs.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadCatalog builds the station catalog from the configured source:
// a calibrated SQLite database, a CSV export, or the embedded sample.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch {
	case cfg.CatalogDB != "":
		rows, err := stationRowsFromDB(ctx, cfg.CatalogDB)
		if err != nil {
			return nil, err
		}
		return catalog.Load(rows), nil

	case cfg.CatalogFile != "":
		f, err := os.Open(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rows, err := catalog.ParseCSV(f)
		if err != nil {
			return nil, err
		}
		return catalog.Load(rows), nil

	default:
		r, err := assets.StationsCSV()
		if err != nil {
			return nil, err
		}
		rows, err := catalog.ParseCSV(r)
		if err != nil {
			return nil, err
		}
		return catalog.Load(rows), nil
	}
}
