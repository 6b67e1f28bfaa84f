package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/volunteer-app/internal/config"
	"github.com/bagdasarian/volunteer-app/internal/db"
	"github.com/bagdasarian/volunteer-app/internal/handler"
	"github.com/bagdasarian/volunteer-app/internal/handler/server"
	"github.com/bagdasarian/volunteer-app/internal/logger"
	"github.com/bagdasarian/volunteer-app/internal/report"
	"github.com/bagdasarian/volunteer-app/internal/repository/postgres"
	"github.com/bagdasarian/volunteer-app/internal/security"
	"github.com/bagdasarian/volunteer-app/internal/service"
	"go.uber.org/zap"
)

const migrationPath = "migrations/000001_init.up.sql"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database := db.MustLoad(cfg)
	log.Info("successfully connected to database")
	defer database.Close()

	if cfg.Migrate {
		if err := db.ApplyMigration(context.Background(), database, migrationPath); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("migration applied", zap.String("path", migrationPath))
	}

	txManager := postgres.NewTxManager(database)
	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	participantRepo := postgres.NewProjectParticipantRepository(database)
	groupRepo := postgres.NewGroupRepository(database)
	memberRepo := postgres.NewGroupMemberRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	commentRepo := postgres.NewCommentRepository(database)
	reportRepo := postgres.NewReportRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	engine := report.NewHTTPEngine(cfg.Report, log)
	defer engine.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.Report.RequestTimeout)
	if err := engine.Ping(pingCtx); err != nil {
		log.Warn("report engine is unavailable", zap.String("url", cfg.Report.EngineURL), zap.Error(err))
	}
	cancelPing()

	reportService := service.NewReportService(txManager, reportRepo, engine)
	seedReports(reportService, cfg.Report.CatalogPath, log)

	h := handler.NewHandler(handler.Services{
		Users:         service.NewUserService(txManager, userRepo, participantRepo, memberRepo, taskRepo, security.NewBcryptHasher(0)),
		Projects:      service.NewProjectService(txManager, projectRepo, participantRepo, userRepo),
		Participation: service.NewProjectParticipation(projectRepo, userRepo, participantRepo),
		Groups:        service.NewGroupService(txManager, groupRepo, memberRepo, userRepo, taskRepo),
		Membership:    service.NewGroupMembership(groupRepo, userRepo, memberRepo),
		Tasks:         service.NewTaskService(taskRepo, projectRepo, service.NewAssigneeResolver(userRepo, groupRepo)),
		Comments:      service.NewCommentService(commentRepo, taskRepo, userRepo, security.NewTextSanitizer()),
		Reports:       reportService,
		Stats:         service.NewStatsService(statsRepo),
	}, log)
	srv := server.NewServer(h, cfg.HTTP, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}

// seedReports заполняет пустой каталог отчетов из YAML; ошибки не мешают старту
func seedReports(reports service.ReportService, path string, log *zap.Logger) {
	entries, err := report.LoadCatalog(path)
	if err != nil {
		log.Warn("report catalog not loaded", zap.String("path", path), zap.Error(err))
		return
	}

	seeded, err := reports.SeedCatalog(context.Background(), entries)
	if err != nil {
		log.Warn("report catalog not seeded", zap.Error(err))
		return
	}
	if seeded > 0 {
		log.Info("report catalog seeded", zap.Int("count", seeded))
	}
}
