package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirel/fitcoach/internal/service"
)

type Server struct {
	mx                    *chi.Mux
	recommendationService service.RecommendationServiceI
	scheduleService       service.ScheduleServiceI
	streakService         service.StreakServiceI
	identityVerifier      IdentityVerifierI
}

type ServicesList struct {
	RecommendationService service.RecommendationServiceI
	ScheduleService       service.ScheduleServiceI
	StreakService         service.StreakServiceI
	IdentityVerifier      IdentityVerifierI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                    chi.NewMux(),
		recommendationService: servicesOptions.RecommendationService,
		scheduleService:       servicesOptions.ScheduleService,
		streakService:         servicesOptions.StreakService,
		identityVerifier:      servicesOptions.IdentityVerifier,
	}
}

func (s *Server) RegisterRoutes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware)
		r.Use(s.SettingUpLoggerMiddleware)
		r.Use(s.AuthMiddleware)
		r.Get("/recommendations", s.GetRecommendations)
		r.Get("/schedule", s.GetSchedule)
		r.Post("/schedule", s.SaveSchedule)
		r.Get("/schedule/used", s.GetUsedItems)
		r.Get("/streak", s.GetStreak)
		r.Post("/streak", s.UpdateStreak)
		r.Post("/streak/reset", s.ResetStreak)
	})
}

func (s *Server) Run(address string) error {
	s.RegisterRoutes()
	return http.ListenAndServe(address, s.mx)
}

func (s *Server) Handler() http.Handler {
	return s.mx
}
