package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer/controller/auth"
	"github.com/Rextro-Exhibition-2025/Crowd-Handling-Backend/app/echoServer/controller/parking"
)

type C struct {
	Parking *parking.Controller
	Auth    *auth.Controller

	// AuthEnabled guards the mutating parking routes behind a bearer
	// token. Left off, the API is fully open like the original deployment.
	AuthEnabled bool
	JWTSecret   string
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api")

	if c.Auth != nil {
		api.POST("/auth/login", c.Auth.Login)
	}

	// Reads are always public: the dashboard polls these.
	r := api.Group("/parkings")
	r.GET("", c.Parking.List)
	r.GET("/stats", c.Parking.Stats)
	r.GET("/:id", c.Parking.Detail)

	w := api.Group("/parkings")
	if c.AuthEnabled {
		w.Use(echojwt.WithConfig(echojwt.Config{
			SigningKey:    []byte(c.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
			TokenLookup:   "header:Authorization",
		}))
	}
	w.POST("", c.Parking.Create)
	w.PUT("/:id", c.Parking.Update)
	w.DELETE("/:id", c.Parking.Delete)
	w.PATCH("/:id/availability", c.Parking.UpdateAvailability)
}
