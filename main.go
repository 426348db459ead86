// Package main parking inventory API.
//
// @title           Parking Management API
// @version         1.0
// @description     Parking-lot inventory service (locations, slot capacity, availability).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer"
	authctrl "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer/controller/auth"
	parkingctrl "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer/controller/parking"
	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer/validation"
	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/config"
	parkingrepo "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/repository/parking"
	authsvc "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/service/auth"
	parkingsvc "github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/service/parking"
	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	pr := parkingrepo.New(db)

	// services
	ps := parkingsvc.New(pr)

	// controllers
	v := validator.New()
	parkingC := &parkingctrl.Controller{Svc: ps, V: v, Log: log}
	var authC *authctrl.Controller
	if cfg.AuthEnabled() {
		as := authsvc.New(cfg.OperatorPasswordHash, cfg.JWTSecret)
		authC = &authctrl.Controller{Svc: as, V: v, Log: log}
	}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, echo.Map{
			"message": "Parking Management API",
			"version": "1.0.0",
			"endpoints": echo.Map{
				"getAllParkings":     "GET /api/parkings",
				"getParkingById":     "GET /api/parkings/:id",
				"getParkingStats":    "GET /api/parkings/stats",
				"createParking":      "POST /api/parkings",
				"updateParking":      "PUT /api/parkings/:id",
				"deleteParking":      "DELETE /api/parkings/:id",
				"updateAvailability": "PATCH /api/parkings/:id/availability",
			},
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Parking: parkingC,
		Auth:    authC,

		AuthEnabled: cfg.AuthEnabled(),
		JWTSecret:   cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "auth_enabled", cfg.AuthEnabled())

	e.Logger.Fatal(e.Start(":" + port))
}
