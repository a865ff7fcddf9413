// Package handler contains the HTTP handlers for the chatbot API.
package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-chatbot/internal/chatbot"
	"github.com/iliyamo/hotel-booking-chatbot/internal/queue"
	queue_publisher "github.com/iliyamo/hotel-booking-chatbot/internal/service"
)

// ChatbotHandler bundles dependencies for the inquiry endpoint.
type ChatbotHandler struct {
	Svc *chatbot.Service
	// PublishEvents turns analytics publishing on; it is off in tests
	// and when no broker is configured.
	PublishEvents bool
}

// NewChatbotHandler constructs a ChatbotHandler and panics if the
// service is missing.
func NewChatbotHandler(svc *chatbot.Service, publishEvents bool) *ChatbotHandler {
	if svc == nil {
		panic("nil service passed to NewChatbotHandler")
	}
	return &ChatbotHandler{Svc: svc, PublishEvents: publishEvents}
}

type askReq struct {
	Question string `json:"question"`
}

// Ask answers one guest question.  Blank questions are rejected before
// they reach the interpreter; everything else produces a 200 with a text
// reply, even when the booking system is unreachable.
func (h *ChatbotHandler) Ask(c echo.Context) error {
	var req askReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	reply, stay := h.Svc.HandleMessage(ctx, question)

	if h.PublishEvents {
		event := queue.InquiryAnsweredEvent{
			Question:   question,
			Intent:     string(stay.Intent),
			Category:   string(stay.Category),
			CheckIn:    stay.CheckIn.Format("2006-01-02"),
			CheckOut:   stay.CheckOut.Format("2006-01-02"),
			Quantity:   stay.Quantity,
			Resident:   stay.Resident,
			AnsweredAt: time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget; a broker outage must not delay the reply.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = queue_publisher.PublishInquiryAnswered(pubCtx, event)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":        "success",
		"chat_response": reply,
	})
}
