package handler

import (
	"family-organizer/internal/transport/httpserver/handler/activities"
	"family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/internal/transport/httpserver/handler/family"
	"family-organizer/internal/transport/httpserver/handler/mealplans"
	"family-organizer/internal/transport/httpserver/handler/settings"
	"family-organizer/internal/transport/httpserver/handler/shopping"
)

type Handlers struct {
	Common     *common.Handlers
	Family     *family.Handlers
	MealPlans  *mealplans.Handlers
	Shopping   *shopping.Handlers
	Activities *activities.Handlers
	Settings   *settings.Handlers
}
