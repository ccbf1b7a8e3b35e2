package router

import (
	"flighttracker/internal/handler"
	"flighttracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

type FlightRouter struct {
	flightHandler       *handler.FlightHandler
	ratelimitMiddleware *middleware.RateLimit
}

func NewFlightRouter(
	flightHandler *handler.FlightHandler,
	ratelimitMiddleware *middleware.RateLimit,
) *FlightRouter {
	return &FlightRouter{
		flightHandler:       flightHandler,
		ratelimitMiddleware: ratelimitMiddleware,
	}
}

func (flightRouter *FlightRouter) RegisterRoutes(engine *gin.Engine) {
	router := engine.Group("/api")
	router.Use(flightRouter.ratelimitMiddleware.Guard())
	{
		router.POST("/track-flight", flightRouter.flightHandler.Track)
	}
}
