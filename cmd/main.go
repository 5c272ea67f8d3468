// @title EduGrow+ API
// @version 1.0
// @description Student progress tracking API: coding platform aggregation, growth scores, goals and mentor feedback.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
	_ "github.com/ruziba3vich/edugrow_backend/docs"
	custom_http "github.com/ruziba3vich/edugrow_backend/internal/http"
	"github.com/ruziba3vich/edugrow_backend/internal/pkg/config"
	"github.com/ruziba3vich/edugrow_backend/internal/pkg/helper"
	"github.com/ruziba3vich/edugrow_backend/internal/platform"
	"github.com/ruziba3vich/edugrow_backend/internal/service"
	"github.com/ruziba3vich/edugrow_backend/internal/storage"
	logger "github.com/ruziba3vich/prodonik_lgger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			newLogger,
			helper.NewDB,
			storage.NewStorage,
			newStudentStore,
			newSyncStore,
			platform.NewGitHubClient,
			platform.NewLeetCodeClient,
			platform.NewHackerRankClient,
			newAggregator,
			service.NewStudentService,
			service.NewGoalService,
			service.NewSyncService,
			custom_http.NewHandler,
			newEngine,
		),
		fx.Invoke(
			registerHandlerRoutes,
			runHTTPServer,
			startCron,
		),
	).Run()
}

func newLogger(cfg *config.Config) *logger.Logger {
	l, err := logger.NewLogger(cfg.LogFilePath)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return l
}

func newStudentStore(s *storage.Storage) service.StudentStore {
	return s
}

func newSyncStore(s *storage.Storage) service.SyncStore {
	return s
}

func newAggregator(
	gh *platform.GitHubClient,
	lc *platform.LeetCodeClient,
	hr *platform.HackerRankClient,
	log *logger.Logger,
) service.StatsAggregator {
	return platform.NewAggregator(gh, lc, hr, log)
}

func registerHandlerRoutes(h *custom_http.Handler, router *gin.Engine) {
	api := router.Group("/api/v1/")
	{
		api.POST("/students", h.CreateStudent)
		api.GET("/students", h.ListStudents)
		api.GET("/students/:id", h.GetStudent)
		api.PUT("/students/:id", h.UpdateStudent)
		api.DELETE("/students/:id", h.DeleteStudent)
		api.PUT("/students/:id/platforms", h.UpdatePlatforms)
		api.PUT("/students/:id/academics", h.UpsertAcademics)
		api.GET("/students/:id/academics", h.GetAcademics)
		api.POST("/students/:id/sync", h.SyncStudent)
		api.GET("/students/:id/history", h.GetHistory)
		api.GET("/students/:id/goals", h.ListGoals)
		api.GET("/students/:id/feedback", h.ListFeedback)

		api.POST("/goals", h.CreateGoal)
		api.GET("/goals/:id", h.GetGoal)
		api.PUT("/goals/:id", h.UpdateGoal)
		api.DELETE("/goals/:id", h.DeleteGoal)
		api.POST("/goals/:id/milestones", h.AddMilestone)
		api.POST("/milestones/:id/toggle", h.ToggleMilestone)

		api.POST("/feedback", h.CreateFeedback)

		api.POST("/sync-all", h.SyncAll)
		api.POST("/stop-syncing", h.StopSyncing)
		api.GET("/sync-status", h.GetSyncingStatus)
	}
}

func newEngine() *gin.Engine {
	engine := gin.Default()

	// Allow all origins
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return engine
}

func runHTTPServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *logger.Logger,
	router *gin.Engine,
) {

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting HTTP server on %s", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server stopped with error", map[string]any{"error": err})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// dailySyncSpec fires once a day at midnight. cron v1 specs carry a
// leading seconds field.
const dailySyncSpec = "0 0 0 * * *"

func startCron(lc fx.Lifecycle, srv *service.SyncService, log *logger.Logger) {
	c := cron.New()

	c.AddFunc(dailySyncSpec, func() {
		if err := srv.StartSyncAll(); err != nil {
			log.Errorf("cron: sync-all not started: %v", err)
		}
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			c.Start()
			log.Info("daily sync cron started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			c.Stop()
			srv.StopSyncing()
			return nil
		},
	})
}
