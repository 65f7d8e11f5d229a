package app

import (
	"database/sql"
	"fmt"
	"os"

	"bancohoras/internal/employee"
	"bancohoras/internal/holiday"
	"bancohoras/internal/messaging/kafka"
	"bancohoras/internal/schedule"
	"bancohoras/internal/syncjob"
	"bancohoras/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	punchSourceURL := os.Getenv("PUNCH_SOURCE_URL")
	if punchSourceURL == "" {
		return fmt.Errorf("PUNCH_SOURCE_URL is required")
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	holidayService := holiday.NewService(holidayRepo)
	timesheetService := timesheet.NewService(db, timesheetRepo, holidayService, rdb, scheduleConfig())

	punchSource := syncjob.NewHTTPPunchSource(punchSourceURL)
	syncManager := syncjob.NewManagerWithOutbox(
		punchSource,
		employeeRepo,
		timesheetService,
		outboxRepo,
		syncConfig(),
	)

	// --- Handlers ---
	holidayHandler := holiday.NewHandler(holidayService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	syncHandler := syncjob.NewHandlerWithRedis(syncManager, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		holiday.RegisterRoutes(api, holidayHandler)
		timesheet.RegisterRoutes(api, timesheetHandler)
		syncjob.RegisterRoutes(api, syncHandler, rdb)
	}

	return nil
}

func scheduleConfig() schedule.Config {
	cfg := schedule.DefaultConfig()
	cfg.FullDayMinutes = envInt("FULL_DAY_MINUTES", cfg.FullDayMinutes)
	cfg.SaturdayMinutes = envInt("SATURDAY_MINUTES", cfg.SaturdayMinutes)
	cfg.ToleranceMinutes = envInt("TOLERANCE_MINUTES", cfg.ToleranceMinutes)
	return cfg
}

func syncConfig() syncjob.Config {
	cfg := syncjob.DefaultConfig()
	cfg.MaxRangeDays = envInt("SYNC_MAX_RANGE_DAYS", cfg.MaxRangeDays)
	return cfg
}
