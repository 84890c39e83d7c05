package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialdesk/internal/accounts"
	"dialdesk/internal/attendance"
	"dialdesk/internal/auth"
	"dialdesk/internal/calls"
	"dialdesk/internal/config"
	"dialdesk/internal/contacts"
	"dialdesk/internal/importer"
	"dialdesk/internal/lists"
	"dialdesk/internal/mail"
	"dialdesk/internal/members"
	"dialdesk/internal/reporting"
	"dialdesk/internal/teams"
	"dialdesk/pkg/logger"
	"dialdesk/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local development reads .env; a missing file is fine in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Repositories
	accountRepo := accounts.NewPostgresRepo(db)
	teamRepo := teams.NewPostgresRepo(db)
	memberRepo := members.NewPostgresRepo(db)
	contactRepo := contacts.NewPostgresRepo(db)
	listRepo := lists.NewPostgresRepo(db)
	callRepo := calls.NewPostgresRepo(db)
	attendanceRepo := attendance.NewPostgresRepo(db)
	reportRepo := reporting.NewPostgresRepo(db)

	// Services. The list manager checks member existence against the member
	// repository directly to keep the service graph acyclic; the team manager
	// delegates its list cascade to the list service built first.
	listSvc := lists.NewService(listRepo, teamRepo, memberRepo, contactRepo)
	teamSvc := teams.NewService(teamRepo, listSvc)
	memberSvc := members.NewService(memberRepo, teamSvc, listSvc)
	contactSvc := contacts.NewService(contactRepo)
	contactExport := contacts.NewExportService(contactRepo, listSvc)
	memberExport := members.NewExportService(memberRepo)
	importSvc := importer.NewService(contactRepo)
	callSvc := calls.NewService(callRepo, teamRepo)
	attendanceSvc := attendance.NewService(attendanceRepo)
	reportSvc := reporting.NewService(reportRepo)
	accountSvc := accounts.NewService(
		accountRepo,
		accounts.NewRedisOTPStore(rdb),
		authManager,
		mail.NewEmailSender(cfg.SMTP),
	)

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, apiDeps{
		AuthMW:     auth.RequireToken(authManager),
		Accounts:   accounts.Handlers{Service: accountSvc},
		Teams:      teams.Handlers{Service: teamSvc},
		Members:    members.Handlers{Service: memberSvc, Export: memberExport},
		Contacts:   contacts.Handlers{Service: contactSvc, Export: contactExport},
		Lists:      lists.Handlers{Service: listSvc},
		Importer:   importer.Handlers{Service: importSvc, Upload: cfg.Upload},
		Calls:      calls.Handlers{Service: callSvc},
		Attendance: attendance.Handlers{Service: attendanceSvc},
		Reports:    reporting.Handlers{Service: reportSvc},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
