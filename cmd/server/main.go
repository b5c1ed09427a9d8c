package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/config"
	"github.com/antrhizom/stud-i-agency-check/internal/api/handler"
	"github.com/antrhizom/stud-i-agency-check/internal/api/router"
	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
	"github.com/antrhizom/stud-i-agency-check/internal/service"
	"github.com/antrhizom/stud-i-agency-check/pkg/database"
	"github.com/antrhizom/stud-i-agency-check/pkg/jwt"
	applogger "github.com/antrhizom/stud-i-agency-check/pkg/logger"
	"github.com/antrhizom/stud-i-agency-check/pkg/redis"
)

func main() {
	// 1. Konfiguration laden
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "konfiguration laden fehlgeschlagen: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger initialisieren
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialisieren fehlgeschlagen: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("anwendung startet",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Lehrplankataloge prüfen; Integritätsfehler sind Programmierfehler
	for _, cat := range []*curriculum.Catalog{curriculum.Bipla(), curriculum.EBA()} {
		if problems := cat.Validate(logger); len(problems) > 0 {
			logger.Fatal("lehrplankatalog inkonsistent",
				zap.String("variant", string(cat.Variant)),
				zap.Int("fehler", len(problems)),
			)
		}
	}

	// 4. Datenbank verbinden und migrieren
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("datenbankverbindung fehlgeschlagen", zap.Error(err))
	}
	logger.Info("datenbank verbunden")

	if err := database.RunMigrations(&cfg.Database, logger); err != nil {
		logger.Fatal("migration fehlgeschlagen", zap.Error(err))
	}

	// 5. Redis verbinden (optional; ohne Redis entfallen Token-Sperre
	// und Rate-Limit, der Betrieb läuft weiter)
	rdb, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis nicht erreichbar, token-sperre deaktiviert", zap.Error(err))
		rdb = nil
	}

	// 6. Abhängigkeiten verdrahten: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 7. HTTP-Server mit Graceful Shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http-server gestartet", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http-server abgebrochen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown-signal empfangen", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server-shutdown fehlgeschlagen", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server beendet")
}
