package main // Entry point package

import (
	"context"
	"os"

	"github.com/iliyamo/house-raffle/internal/config"  // Internal config loader
	"github.com/iliyamo/house-raffle/internal/console" // Interactive menu
	"github.com/iliyamo/house-raffle/internal/queue"   // Sale events
	"github.com/iliyamo/house-raffle/internal/service" // Raffle session
)

func main() {
	cfg := config.Load()                       // Load environment config
	logger := config.NewLogger(cfg, os.Stderr) // Logs stay off stdout

	session := service.NewSession(service.SessionProperty{
		Config:    cfg,
		Logger:    logger,
		Publisher: queue.NewLogPublisher(logger),
	})
	logger.WithField("env", cfg.Env).Infof("raffle started, price %d cents", session.PriceCents())

	if err := console.New(session, os.Stdin, os.Stdout).Run(context.Background()); err != nil {
		logger.WithError(err).Warn("session ended") // Exit code stays 0
	}
}
