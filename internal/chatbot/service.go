package chatbot

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-booking-chatbot/internal/engine"
	"github.com/iliyamo/hotel-booking-chatbot/internal/model"
	"github.com/iliyamo/hotel-booking-chatbot/internal/provider"
	"github.com/iliyamo/hotel-booking-chatbot/internal/utils"
)

// Service turns one guest question into one reply.  Every call is
// stateless: entities are re-extracted and occupancy is recomputed fresh
// per request, so a Service is safe for concurrent use.
type Service struct {
	engine *engine.Engine
	log    *utils.Logger
	now    func() time.Time // injectable for deterministic date tests
}

// New wires a Service on top of a booking source.
func New(src provider.BookingSource, log *utils.Logger) *Service {
	if log == nil {
		log = utils.NewLogger()
	}
	return &Service{
		engine: engine.New(src, log),
		log:    log,
		now:    time.Now,
	}
}

// Interpret extracts the stay request from a raw question.  Detection
// failures fall back to the documented defaults: Standard category,
// non-resident, one night starting next week, a single room.
func (s *Service) Interpret(input string) model.StayRequest {
	normalized := Normalize(input)

	category, detected := DetectCategory(normalized)
	if !detected {
		category = model.Standard
	}
	checkIn, checkOut := DetectDates(normalized, s.now())

	return model.StayRequest{
		Category:         category,
		CategoryDetected: detected,
		Resident:         DetectResidency(normalized),
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Quantity:         DetectQuantity(normalized),
		Intent:           DetectIntent(normalized),
	}
}

// HandleMessage answers a guest question.  The input is assumed non-empty
// (the transport layer rejects blank questions); every path returns a
// human-readable reply, never an error.
func (s *Service) HandleMessage(ctx context.Context, input string) (string, model.StayRequest) {
	req := s.Interpret(input)

	switch req.Intent {
	case model.IntentPrice:
		reply, err := s.buildPriceReply(ctx, req)
		if err != nil {
			s.log.Error("price reply failed: %v", err)
			return priceErrorReply, req
		}
		return reply, req

	case model.IntentAvailability:
		reply, err := s.buildAvailabilityReply(ctx, req)
		if err != nil {
			s.log.Error("availability reply failed: %v", err)
			return availabilityErrorReply, req
		}
		return reply, req

	case model.IntentRoomInfo:
		return roomInfoReply(req.Category, req.CategoryDetected), req

	case model.IntentBookingHelp:
		return bookingHelpReply(), req

	default:
		return defaultReply(), req
	}
}

func (s *Service) buildPriceReply(ctx context.Context, req model.StayRequest) (string, error) {
	rate, err := s.engine.PredictRate(ctx, req.Category, req.CheckIn, req.Resident)
	if err != nil {
		return "", err
	}
	snapshot, err := s.engine.Occupancy(ctx, req.Category, req.CheckIn, req.CheckOut)
	if err != nil {
		return "", err
	}
	return priceReply(req, rate, snapshot), nil
}

func (s *Service) buildAvailabilityReply(ctx context.Context, req model.StayRequest) (string, error) {
	available, err := s.engine.CheckAvailability(ctx, req.Category, req.CheckIn, req.CheckOut, req.Quantity)
	if err != nil {
		return "", err
	}
	snapshot, err := s.engine.Occupancy(ctx, req.Category, req.CheckIn, req.CheckOut)
	if err != nil {
		return "", err
	}

	if available {
		return availableReply(req, snapshot), nil
	}
	alternatives := s.engine.Alternatives(ctx, req.Category, req.CheckIn, req.CheckOut, req.Quantity)
	return unavailableReply(req, snapshot, alternatives), nil
}
