package main // Entry point package

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-chatbot/internal/chatbot"
	"github.com/iliyamo/hotel-booking-chatbot/internal/config"
	"github.com/iliyamo/hotel-booking-chatbot/internal/database"
	"github.com/iliyamo/hotel-booking-chatbot/internal/handler"
	"github.com/iliyamo/hotel-booking-chatbot/internal/middleware"
	"github.com/iliyamo/hotel-booking-chatbot/internal/provider"
	"github.com/iliyamo/hotel-booking-chatbot/internal/queue"
	"github.com/iliyamo/hotel-booking-chatbot/internal/repository"
	"github.com/iliyamo/hotel-booking-chatbot/internal/router"
	"github.com/iliyamo/hotel-booking-chatbot/internal/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger()

	// The booking data source is either the booking service REST API or a
	// direct read of its database, depending on deployment.
	var src provider.BookingSource
	switch cfg.BookingSource {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("connect booking database: %v", err)
		}
		src = repository.NewBookingRepo(db)
		logger.Info("booking source: mysql (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)
	default:
		src = provider.NewClient(cfg.BookingAPIBaseURL, cfg.BookingAPITimeout)
		logger.Info("booking source: http (%s)", cfg.BookingAPIBaseURL)
	}

	svc := chatbot.New(src, logger)

	// Rate limiting degrades to a passthrough when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unreachable, rate limiting disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Analytics events need a broker; without one the publisher and the
	// consumer both stay off.
	brokerConfigured := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	if brokerConfigured {
		go queue.StartInquiryConsumer()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterChatbot(e, handler.NewChatbotHandler(svc, brokerConfigured), rateLimit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
