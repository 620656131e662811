package routes

import (
	"time"

	"github.com/vanshikasingh06/health-mate/controllers"
	"github.com/vanshikasingh06/health-mate/middlewares"
	"github.com/vanshikasingh06/health-mate/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers around the shared DB handle
// and registers every route. Everything under /api except auth requires a
// valid session token.
func SetupRouter(db *gorm.DB) *gin.Engine {
	hub := services.NewRealtimeHub()
	alerts := services.NewAlertBus(db, hub)

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	trackerSvc := services.NewTrackerService(db)
	dashboardSvc := services.NewDashboardService(db)
	progressSvc := services.NewProgressService(db)
	goalSvc := services.NewGoalService(db, alerts)
	recordSvc := services.NewHealthRecordService(db)

	auth := controllers.NewAuthController(authSvc)
	user := controllers.NewUserController(userSvc)
	tracker := controllers.NewTrackerController(trackerSvc)
	dashboard := controllers.NewDashboardController(dashboardSvc, userSvc)
	bmi := controllers.NewBMIController(userSvc)
	progress := controllers.NewProgressController(progressSvc)
	goal := controllers.NewGoalController(goalSvc)
	record := controllers.NewHealthRecordController(recordSvc, userSvc)
	realtime := controllers.NewRealtimeController(hub, alerts)

	r := gin.New()
	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pub := r.Group("/auth")
	{
		pub.POST("/register", auth.Register)
		pub.POST("/login", auth.Login)
		pub.POST("/forgot-password", auth.ForgotPassword)
		pub.POST("/reset-password", auth.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/logout", auth.Logout)

		api.GET("/profile", user.GetProfile)
		api.PUT("/profile/picture", user.UpdatePicture)

		api.GET("/dashboard", dashboard.Summary)
		api.GET("/bmi", bmi.Report)
		api.GET("/progress", progress.Report)

		api.POST("/exercise", tracker.LogExercise)
		api.GET("/exercise", tracker.ListExercise)
		api.POST("/water", tracker.LogWater)
		api.GET("/water", tracker.ListWater)
		api.POST("/sleep", tracker.LogSleep)
		api.GET("/sleep", tracker.ListSleep)
		api.POST("/mood", tracker.LogMood)
		api.GET("/mood", tracker.ListMood)

		api.POST("/goals", goal.Create)
		api.GET("/goals", goal.List)
		api.PUT("/goals/:id", goal.UpdateProgress)

		api.POST("/health/records", record.Record)
		api.GET("/health/records", record.List)

		api.GET("/alerts", realtime.ListAlerts)
		api.GET("/ws", realtime.AlertsWS)
	}

	return r
}
