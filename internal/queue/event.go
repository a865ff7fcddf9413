// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryAnsweredEvent is published after every answered guest question.
// It carries the interpreted request alongside the raw question so
// downstream consumers can analyse detection quality and demand patterns
// without calling back into the service.
type InquiryAnsweredEvent struct {
	Question   string `json:"question"`
	Intent     string `json:"intent"`
	Category   string `json:"room_category"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Quantity   int    `json:"quantity"`
	Resident   bool   `json:"resident"`
	AnsweredAt string `json:"answered_at"`
}
