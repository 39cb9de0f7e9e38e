package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip planner API routes under /api/v1.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to
// the versioned API group only. /health stays unwrapped.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	itineraries := api.Group("/itineraries")
	itineraries.POST("", h.GenerateItinerary)
	itineraries.POST("/pdf", h.ExportItineraryPDF)

	hotels := api.Group("/hotels")
	hotels.POST("/suggest", h.SuggestHotels)

	api.GET("/weather", h.Forecast)
}
