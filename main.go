package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"console/internal/backend"
	"console/internal/bookingview"
	intconfig "console/internal/config"
	router "console/internal/http"
	"console/internal/http/handlers"
	"console/internal/repositories"
	"console/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionIdleTTL = 7 * 24 * time.Hour

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hs := &handlers.Handlers{
		Backend:    backend.New(env.BackendURL, env.UpstreamTimeout, env.UpstreamRPS),
		Normalizer: bookingview.Normalizer{Loc: env.Location()},
		PublicURL:  env.PublicURL,
	}

	var store session.Store = session.NewMemoryStore()
	if env.SessionStore == "mysql" {
		db, err := intconfig.ConnectDB(env)
		if err != nil {
			log.Fatalf("session database: %v", err)
		}
		defer intconfig.CloseDB()

		repo := repositories.SessionRepository{DB: db}
		if err := repo.EnsureTable(ctx); err != nil {
			log.Fatalf("session table: %v", err)
		}
		go purgeSessions(ctx, repo)
		store = repo
		hs.DB = db
	}

	// Router (Gin engine)
	r := router.NewRouter(hs, store, router.RouterOptions{
		CORSOrigins:  env.CORSAllowedOrigins,
		CookieSecure: env.CookieSecure,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.UpstreamTimeout + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("console listening on %s (backend %s, sessions %s)", env.AppAddr, env.BackendURL, env.SessionStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}

// purgeSessions drops idle MySQL sessions once an hour.
func purgeSessions(ctx context.Context, repo repositories.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.PurgeIdle(ctx, time.Now().Add(-sessionIdleTTL))
			if err != nil {
				log.Printf("[SESSION] action=purge msg=%v", err)
				continue
			}
			if n > 0 {
				log.Printf("[SESSION] action=purge removed=%d", n)
			}
		}
	}
}
