package stopfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideStopRepo, provideStopService, controllers.NewStopController)

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideStopService(
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
	tripRepo repositories.TripRepository,
	logService services.ActivityLogServiceInterface,
) services.StopServiceInterface {
	return services.NewStopService(stopRepo, activityRepo, tripRepo, logService)
}
