package models

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested     TripStatus = "REQUESTED"
	TripStatusAccepted      TripStatus = "ACCEPTED"
	TripStatusDriverArrived TripStatus = "DRIVER_ARRIVED"
	TripStatusInProgress    TripStatus = "IN_PROGRESS"
	TripStatusCompleted     TripStatus = "COMPLETED"
	TripStatusCancelled     TripStatus = "CANCELLED"
)

// TripStatuses lists every trip status in lifecycle order
var TripStatuses = []TripStatus{
	TripStatusRequested,
	TripStatusAccepted,
	TripStatusDriverArrived,
	TripStatusInProgress,
	TripStatusCompleted,
	TripStatusCancelled,
}

// ActiveTripStatuses are the statuses that occupy a requester or a driver
var ActiveTripStatuses = []TripStatus{
	TripStatusRequested,
	TripStatusAccepted,
	TripStatusDriverArrived,
	TripStatusInProgress,
}

var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusRequested:     {TripStatusAccepted, TripStatusCancelled},
	TripStatusAccepted:      {TripStatusDriverArrived, TripStatusCancelled},
	TripStatusDriverArrived: {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress:    {TripStatusCompleted},
	TripStatusCompleted:     {},
	TripStatusCancelled:     {},
}

// Valid reports whether s is a known status
func (s TripStatus) Valid() bool {
	_, ok := tripTransitions[s]
	return ok
}

// CanTransition reports whether a trip in status s may move to next
func (s TripStatus) CanTransition(next TripStatus) bool {
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the status occupies the requester and driver
func (s TripStatus) IsActive() bool {
	for _, a := range ActiveTripStatuses {
		if a == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// IsCancellable reports whether a trip in this status may still be cancelled
func (s TripStatus) IsCancellable() bool {
	return s.CanTransition(TripStatusCancelled)
}

// ActiveTripStatusStrings returns the active statuses as strings for SQL parameters
func ActiveTripStatusStrings() []string {
	out := make([]string, len(ActiveTripStatuses))
	for i, s := range ActiveTripStatuses {
		out[i] = string(s)
	}
	return out
}
