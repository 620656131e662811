package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshikasingh06/health-mate/cache"
	"github.com/vanshikasingh06/health-mate/config"
	"github.com/vanshikasingh06/health-mate/routes"
	"github.com/vanshikasingh06/health-mate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	config.LoadEnv()

	db, err := config.InitDB()
	if err != nil {
		utils.Logger.Fatal("db_init_failed", zap.Error(err))
	}

	// Optional collaborators: the app runs without them.
	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Warn("redis_unavailable_caching_disabled", zap.Error(err))
	}
	defer cache.Close()
	if err := utils.InitMailer(); err != nil {
		utils.Logger.Warn("mailer_unavailable_email_disabled", zap.Error(err))
	}
	if err := utils.InitS3(); err != nil {
		utils.Logger.Warn("s3_unavailable_uploads_disabled", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.Logger.Info("starting_http_server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
}
