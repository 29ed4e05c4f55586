package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"showbill/internal/logging"
	"showbill/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logging.SetGlobal(logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}))

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if cfg.SeedDemo {
		if err := bootstrapDemoData(context.Background(), db); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
	}

	handler := newHTTPHandler(dataStore)

	log.Info().Str("addr", cfg.Addr).Msg("showbill listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
