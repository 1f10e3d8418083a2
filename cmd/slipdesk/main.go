package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"slipdesk/frontend/manifest"
	"slipdesk/infrastructure/audit"
	"slipdesk/infrastructure/cache"
	httpserver "slipdesk/infrastructure/http"
	"slipdesk/infrastructure/rbac"
	"slipdesk/infrastructure/sqlite"
	"slipdesk/infrastructure/webhook"
)

func main() {
	_ = godotenv.Load()

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "slipdesk.db")
	webhookBaseURL := getenv("WEBHOOK_BASE_URL", "http://localhost:5678")
	pacing := getenvDuration("WEBHOOK_PACING_MS", 750*time.Millisecond)

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db, "infrastructure/sqlite/migrations"); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	sessionCache := cache.NewUserSessionCache()
	userCache := cache.NewUserCache()
	rbacCache := cache.NewRbacRolesCache()
	rbacSvc := rbac.New(rbacCache)
	auditSvc := audit.NewService()
	webhookClient := webhook.NewClient(webhookBaseURL, pacing)

	manifestEngine, err := manifest.RebuildEngine(context.Background(), db)
	if err != nil {
		log.Fatalf("rebuild manifest engine: %v", err)
	}

	server := httpserver.NewServer(addr, db, sessionCache, userCache, rbacSvc, rbacCache, auditSvc, webhookClient, manifestEngine)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("slipdesk listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
