// @title FitCoach API
// @description Recommendation and weekly schedule engine for the FitCoach app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/mirel/fitcoach/internal/api"
	"github.com/mirel/fitcoach/internal/repository"
	"github.com/mirel/fitcoach/internal/service"
	"github.com/mirel/fitcoach/pkg/cleanup"
	"github.com/mirel/fitcoach/pkg/config"
	"github.com/mirel/fitcoach/pkg/identity"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	profilesRepo := repository.NewProfilesRepo(&dbCfg)
	usedItemsRepo := repository.NewUsedItemsRepo(&dbCfg)
	recommendationService := service.NewRecommendationService(
		repository.NewWorkoutsRepo(&dbCfg),
		repository.NewDietsRepo(&dbCfg),
		usedItemsRepo,
		profilesRepo,
		nil,
	)
	scheduleService := service.NewScheduleService(repository.NewScheduleRepo(&dbCfg), usedItemsRepo, profilesRepo)
	streakService := service.NewStreakService(repository.NewStreaksRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		RecommendationService: recommendationService,
		ScheduleService:       scheduleService,
		StreakService:         streakService,
		IdentityVerifier:      identity.New(cfg.GetString("IDENTITY_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
