package models

import "time"

// EventType names a published domain event
type EventType string

const (
	EventTripRequested     EventType = "trip.requested"
	EventTripAccepted      EventType = "trip.accepted"
	EventTripStatusChanged EventType = "trip.status_changed"
	EventTripCancelled     EventType = "trip.cancelled"
	EventTripCompleted     EventType = "trip.completed"
	EventPaymentCompleted  EventType = "payment.completed"
	EventWalletTopup       EventType = "wallet.topup"
	EventWalletWithdrawal  EventType = "wallet.withdrawal"
	EventWalletTransfer    EventType = "wallet.transfer"
)

// Event is the payload published for collaborators
type Event struct {
	ID            string         `json:"id"`
	Type          EventType      `json:"type"`
	OccurredAt    time.Time      `json:"occurred_at"`
	Trip          *Trip          `json:"trip,omitempty"`
	Transactions  []*Transaction `json:"transactions,omitempty"`
	CandidateIDs  []string       `json:"candidate_ids,omitempty"`
	PickupGeohash string         `json:"pickup_geohash,omitempty"`
	ReferenceID   string         `json:"reference_id,omitempty"`
	PreviousState TripStatus     `json:"previous_status,omitempty"`
}
