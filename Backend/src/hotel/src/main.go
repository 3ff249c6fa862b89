package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logger (stdout queda para la consola del operador)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := LoadConfig(os.Args)
	must(err)
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Info().
		Str("db", cfg.DBPath).
		Str("driver", cfg.DBDriver).
		Str("save_mode", string(cfg.SaveMode)).
		Msg("starting hotel rooms service")

	ctx := context.Background()

	inv, err := NewInventory(cfg.SearchCacheSize)
	must(err)

	// Repo: a partir de aquí no se usa must() para no saltarse el Close
	repo, err := NewRepository(ctx, cfg)
	must(err)
	defer repo.Close()

	if _, err := repo.Load(ctx, inv); err != nil {
		log.Error().Err(err).Msg("load failed, starting from defaults")
	}

	if cfg.ListOnly {
		NewMenu(inv, repo, nil, nil, os.Stdout).displayRooms(ctx)
		return
	}

	// Rabbit (opcional)
	rabbit, err := NewRabbit(cfg.RabbitURL, cfg.EventsExchange)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ not available, continuing without events")
	}
	defer rabbit.Close()

	if err := NewMenu(inv, repo, rabbit, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Error().Err(err).Msg("console input error")
	}
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
