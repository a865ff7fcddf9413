// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-chatbot/internal/handler"
)

// RegisterRoutes registers routes that need no middleware on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterChatbot mounts the inquiry endpoint under /v1 with the given
// rate-limit middleware.  Pass a nil middleware to mount it bare (used
// by tests and setups without Redis).
func RegisterChatbot(e *echo.Echo, h *handler.ChatbotHandler, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if rateLimit != nil {
		g.Use(rateLimit)
	}
	g.POST("/chatbot/ask", h.Ask)
}
