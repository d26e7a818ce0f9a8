package httpserver

import (
	"net/http"
	"time"

	"family-organizer/internal/config"
	"family-organizer/internal/transport/httpserver/handler"
	"family-organizer/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route. metrics may be nil to leave /api/metrics out.
func NewRouter(cfg config.Config, handlers *handler.Handlers, sessions middleware.SessionReader, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)
		if metrics != nil {
			r.Method(http.MethodGet, "/metrics", metrics)
		}

		r.Get("/session/candidates", handlers.Common.ListCandidates)
		r.Post("/session", handlers.Common.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))

			r.Group(func(r chi.Router) {
				r.Use(chimw.Timeout(30 * time.Second))

				r.Get("/session", handlers.Common.Me)
				r.Delete("/session", handlers.Common.Logout)
				r.Get("/views", handlers.Common.Views)
				r.Get("/dashboard", handlers.Common.GetDashboard)
				r.Get("/locations", handlers.Common.ListLocations)

				r.Get("/members", handlers.Family.ListMembers)
				r.Post("/members", handlers.Family.CreateMember)
				r.Get("/members/{id}", handlers.Family.GetMember)
				r.Patch("/members/{id}", handlers.Family.UpdateMember)
				r.Delete("/members/{id}", handlers.Family.DeleteMember)

				r.Get("/meal-plans", handlers.MealPlans.ListMealPlans)
				r.Post("/meal-plans", handlers.MealPlans.CreateMealPlan)
				r.Get("/meal-plans/day/{day}", handlers.MealPlans.GetMealPlanForDay)
				r.Post("/meal-plans/accept", handlers.MealPlans.AcceptMealPlans)
				r.Get("/meal-plans/{id}", handlers.MealPlans.GetMealPlan)
				r.Put("/meal-plans/{id}", handlers.MealPlans.UpdateMealPlan)
				r.Delete("/meal-plans/{id}", handlers.MealPlans.DeleteMealPlan)

				r.Get("/shopping-items", handlers.Shopping.ListItems)
				r.Post("/shopping-items", handlers.Shopping.CreateItem)
				r.Post("/shopping-items/from-meal-plans", handlers.Shopping.AddFromMealPlans)
				r.Patch("/shopping-items/{id}", handlers.Shopping.UpdateItem)
				r.Post("/shopping-items/{id}/toggle", handlers.Shopping.ToggleItem)
				r.Delete("/shopping-items/{id}", handlers.Shopping.DeleteItem)

				r.Get("/activities", handlers.Activities.ListActivities)
				r.Post("/activities", handlers.Activities.CreateActivity)
				r.Get("/activities/calendar", handlers.Activities.Calendar)
				r.Get("/activities/{id}", handlers.Activities.GetActivity)
				r.Put("/activities/{id}", handlers.Activities.UpdateActivity)
				r.Delete("/activities/{id}", handlers.Activities.DeleteActivity)

				r.Get("/settings/api-key", handlers.Settings.GetAPIKey)
				r.Put("/settings/api-key", handlers.Settings.SetAPIKey)
				r.Delete("/settings/api-key", handlers.Settings.ClearAPIKey)
			})

			// Generation waits on the completions API and is bounded by
			// MEALGEN_TIMEOUT instead.
			r.Post("/meal-plans/generate", handlers.MealPlans.GenerateMealPlans)
		})
	})

	return r
}
