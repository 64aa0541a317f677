package echoServer

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CS490-Individual-Project/Backend/app/echoServer/controller/actor"
	"github.com/CS490-Individual-Project/Backend/app/echoServer/controller/customer"
	"github.com/CS490-Individual-Project/Backend/app/echoServer/controller/film"
	"github.com/CS490-Individual-Project/Backend/app/echoServer/controller/rental"
)

type C struct {
	Film     *film.Controller
	Actor    *actor.Controller
	Customer *customer.Controller
	Rental   *rental.Controller
}

func Register(e *echo.Echo, c C) {
	// Landing page
	e.GET("/top5rented", c.Film.TopRented)
	e.GET("/top5actors", c.Actor.TopActors)
	e.GET("/actordetails", c.Actor.Details)

	// Films page
	e.GET("/searchfilms", c.Film.Search)
	e.GET("/filmdetails", c.Film.Details)
	e.PUT("/rentfilm", c.Rental.Rent)

	// Customer page
	e.GET("/customers", c.Customer.List)
	e.GET("/searchcustomers", c.Customer.Search)
	e.POST("/addcustomer", c.Customer.Add)
	e.PUT("/deletecustomer", c.Customer.Delete)
	e.GET("/customerdetails", c.Customer.Details)
	e.PUT("/returnfilm", c.Rental.Return)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
