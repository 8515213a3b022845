package tripfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService, controllers.NewTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
	logService services.ActivityLogServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, stopRepo, activityRepo, logService)
}
