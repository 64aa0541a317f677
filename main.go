// Package main movie rental API.
//
// @title           Movie Rental API
// @version         1.0
// @description     Sakila movie-rental service (films, actors, customers, rentals).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/CS490-Individual-Project/Backend/app/echoServer"
	actorctrl "github.com/CS490-Individual-Project/Backend/app/echoServer/controller/actor"
	customerctrl "github.com/CS490-Individual-Project/Backend/app/echoServer/controller/customer"
	filmctrl "github.com/CS490-Individual-Project/Backend/app/echoServer/controller/film"
	rentalctrl "github.com/CS490-Individual-Project/Backend/app/echoServer/controller/rental"
	"github.com/CS490-Individual-Project/Backend/app/echoServer/validation"
	"github.com/CS490-Individual-Project/Backend/config"
	actorrepo "github.com/CS490-Individual-Project/Backend/repository/actor"
	customerrepo "github.com/CS490-Individual-Project/Backend/repository/customer"
	filmrepo "github.com/CS490-Individual-Project/Backend/repository/film"
	rentalrepo "github.com/CS490-Individual-Project/Backend/repository/rental"
	actorsvc "github.com/CS490-Individual-Project/Backend/service/actor"
	customersvc "github.com/CS490-Individual-Project/Backend/service/customer"
	filmsvc "github.com/CS490-Individual-Project/Backend/service/film"
	rentalsvc "github.com/CS490-Individual-Project/Backend/service/rental"
	"github.com/CS490-Individual-Project/Backend/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: bounded pgx pool
	pool, err := database.New(ctx, cfg.DatabaseURL, database.PoolConfig{
		MaxConns:       cfg.DBMaxConns,
		AcquireTimeout: cfg.DBAcquireTimeout,
		QueryTimeout:   cfg.DBQueryTimeout,
	})
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	g := database.NewGateway(pool, cfg.DBQueryTimeout)

	// repos
	fr := filmrepo.New(g)
	ar := actorrepo.New(g)
	cr := customerrepo.New(g)
	rr := rentalrepo.New(g)

	// services
	fs := filmsvc.New(fr)
	as := actorsvc.New(ar)
	cs := customersvc.New(g, cr)
	rentals := rentalsvc.New(g, rr, fr)

	// controllers
	v := validator.New()
	filmC := &filmctrl.Controller{Svc: fs, Log: log}
	actorC := &actorctrl.Controller{Svc: as, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rentals, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = echoServer.JSONSerializer{}
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Film:     filmC,
		Actor:    actorC,
		Customer: customerC,
		Rental:   rentalC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
