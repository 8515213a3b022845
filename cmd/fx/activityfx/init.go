package activityfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService, controllers.NewActivityController)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	stopRepo repositories.StopRepository,
	tripRepo repositories.TripRepository,
	logService services.ActivityLogServiceInterface,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, stopRepo, tripRepo, logService)
}
