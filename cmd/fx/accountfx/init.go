package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/oauth"
)

var Module = fx.Provide(
	provideUserRepo, provideGoogleProvider, provideAccountService, controllers.NewAccountController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideGoogleProvider() services.GoogleExchanger {
	return oauth.NewGoogleProvider()
}

func provideAccountService(userRepo repositories.UserRepository, google services.GoogleExchanger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, google)
}
