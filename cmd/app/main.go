package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"globetrotter/cmd/fx/accountfx"
	"globetrotter/cmd/fx/activityfx"
	"globetrotter/cmd/fx/activitylogfx"
	"globetrotter/cmd/fx/budgetfx"
	"globetrotter/cmd/fx/dbfx"
	"globetrotter/cmd/fx/stopfx"
	"globetrotter/cmd/fx/tripfx"
	"globetrotter/internal/api/controllers"
	"globetrotter/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		tripfx.Module,
		stopfx.Module,
		activityfx.Module,
		budgetfx.Module,
		activitylogfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5001"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	activityLogController *controllers.ActivityLogController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController, tripController, stopController,
		activityController, budgetController, activityLogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	budgetController *controllers.BudgetController,
	activityLogController *controllers.ActivityLogController,
) {
	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/signup", accountController.Signup)
	users.POST("/login", accountController.Login)
	users.GET("/auth/google", accountController.GoogleAuth)
	users.GET("/auth/google/callback", accountController.GoogleCallback)
	users.GET("/profile", middleware.JWTAuthMiddleware(), accountController.Profile)
	users.PUT("/profile", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)
	users.PUT("/avatar", middleware.JWTAuthMiddleware(), accountController.UpdateAvatar)
	users.PUT("/password", middleware.JWTAuthMiddleware(), accountController.ChangePassword)

	trips := api.Group("/trips")
	trips.POST("", tripController.CreateTrip)
	trips.GET("/:id", tripController.GetTripsByUser) // :id is the owning user here
	trips.PUT("/:id", tripController.UpdateTrip)
	trips.DELETE("/:id", tripController.DeleteTrip)

	stops := api.Group("/stops")
	stops.POST("", stopController.CreateStop)
	stops.GET("/trip/:tripId", stopController.GetStopsByTrip)
	stops.DELETE("/:stopId", stopController.DeleteStop)

	activities := api.Group("/activities")
	activities.POST("", activityController.CreateActivity)
	activities.GET("/stop/:stopId", activityController.GetActivitiesByStop)
	activities.DELETE("/:activityId", activityController.DeleteActivity)

	api.GET("/budget/:tripId", budgetController.GetTripBudget)
	api.GET("/activity-log/user/:userId", activityLogController.GetRecentByUser)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "GlobeTrotter Backend Running")
	})
}
