package common

import (
	dashboarddomain "family-organizer/internal/domain/dashboard"
	locationdomain "family-organizer/internal/domain/location"
	sessiondomain "family-organizer/internal/domain/session"
	"family-organizer/pkg/logger"
)

type Handlers struct {
	Sessions  *sessiondomain.Service
	Dashboard *dashboarddomain.Service
	Locations *locationdomain.Service
	log       logger.Logger
}

func New(sessions *sessiondomain.Service, dashboard *dashboarddomain.Service, locations *locationdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Sessions:  sessions,
		Dashboard: dashboard,
		Locations: locations,
		log:       log,
	}
}
