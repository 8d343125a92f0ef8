package usecase

import "github.com/piresc/ridepay/internal/pkg/models"

type tripAction string

const (
	actionView     tripAction = "view"
	actionArrive   tripAction = "arrive"
	actionStart    tripAction = "start"
	actionComplete tripAction = "complete"
	actionCancel   tripAction = "cancel"
	actionRate     tripAction = "rate"
)

// relationship is how an actor relates to a trip
type relationship string

const (
	relRequester relationship = "requester"
	relDriver    relationship = "driver"
	relOther     relationship = "other"
)

var permissions = map[tripAction]map[relationship]bool{
	actionView:     {relRequester: true, relDriver: true},
	actionArrive:   {relDriver: true},
	actionStart:    {relDriver: true},
	actionComplete: {relDriver: true},
	actionCancel:   {relRequester: true, relDriver: true},
	actionRate:     {relRequester: true, relDriver: true},
}

var statusActions = map[models.TripStatus]tripAction{
	models.TripStatusDriverArrived: actionArrive,
	models.TripStatusInProgress:    actionStart,
	models.TripStatusCompleted:     actionComplete,
	models.TripStatusCancelled:     actionCancel,
}

func relationTo(trip *models.Trip, actorID string) relationship {
	switch {
	case actorID == "":
		return relOther
	case actorID == trip.RequesterID:
		return relRequester
	case trip.DriverID != "" && actorID == trip.DriverID:
		return relDriver
	default:
		return relOther
	}
}

func allowed(action tripAction, trip *models.Trip, actorID string) bool {
	return permissions[action][relationTo(trip, actorID)]
}
