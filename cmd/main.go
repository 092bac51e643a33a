package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/routes"
	"github.com/johpaz/apiGestion-api/services"
	"github.com/johpaz/apiGestion-api/utils"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger()
	defer logger.Sync()

	db := config.InitDB()
	utils.InitS3()

	var mailer services.Mailer
	if m, err := utils.NewSESMailer(logger); err != nil {
		logger.Warn("correo deshabilitado: no se pudo inicializar SES", zap.Error(err))
	} else {
		mailer = m
	}

	hub := services.NewRealtimeHub()
	store := services.NewStore(db)
	alerts := services.NewAlertService(store, mailer, hub, logger)
	scheduler := services.NewSchedulerService(alerts, logger)
	scheduler.Start()
	defer scheduler.Stop()

	r := routes.SetupRouter(routes.Deps{
		Alerts:    alerts,
		Scheduler: scheduler,
		Hub:       hub,
		Logger:    logger,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("el servidor no pudo iniciarse", zap.Error(err))
	}
}
