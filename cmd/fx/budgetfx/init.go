package budgetfx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(provideBudgetService, controllers.NewBudgetController)

func provideBudgetService(
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
) services.BudgetServiceInterface {
	return services.NewBudgetService(stopRepo, activityRepo)
}
