package activitylogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideActivityLogRepo, provideActivityLogService, controllers.NewActivityLogController)

func provideActivityLogRepo(db *gorm.DB) repositories.ActivityLogRepository {
	return repositories.NewActivityLogRepository(db)
}

func provideActivityLogService(logRepo repositories.ActivityLogRepository) services.ActivityLogServiceInterface {
	return services.NewActivityLogService(logRepo)
}
