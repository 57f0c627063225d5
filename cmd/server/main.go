package main

import (
	"dispatchbase/internal/api"
	"dispatchbase/internal/config"
	"dispatchbase/internal/database"
	"dispatchbase/internal/logging"
	"dispatchbase/internal/service"
	"dispatchbase/internal/web"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logFile, err := logging.Setup(cfg)
	if err != nil {
		logrus.Fatalf("logging setup failed: %v", err)
	}
	defer logFile.Close()

	database.Init(cfg)
	defer database.Close(database.DB)

	svc := service.NewRegistry(database.DB)
	app := web.NewApp(cfg, svc)
	if cfg.APIEnabled() {
		api.Register(app, cfg, svc)
	}

	logrus.WithField("port", cfg.HTTPPort).Info("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.Fatal(err)
	}
}
