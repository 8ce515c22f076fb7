package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"wired-people-backend/config"
	apiv1 "wired-people-backend/controllers/v1"
	"wired-people-backend/fiberlog"
	"wired-people-backend/initializers"
	"wired-people-backend/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, relying on environment")
	}

	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.AuthorizationRequired())

	apiv1.InitProcessApiRouters(apiV1)
	apiv1.InitTalentApiRouters(apiV1)
	apiv1.InitPanelApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	listenAddr := fmt.Sprintf("%v:%v", config.Conf.App.ListenAddr, config.Conf.App.Port)
	if err := app.Listen(listenAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}
