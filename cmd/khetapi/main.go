// khetapi runs a local emulator of the Khet Connect REST API so the panel can
// be developed and tested without the deployed service. Point the panel at it
// with API_BASE_URL=http://localhost:9000/api/v1/.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/khetconnect/admin-panel/internal/stubapi"
)

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	dbPath := flag.String("db", "khetapi.db", "sqlite database path")
	seed := flag.Bool("seed", false, "seed an operator account and sample rows")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}

	db, err := stubapi.InitDB(*dbPath)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if *seed {
		email := os.Getenv("SEED_EMAIL")
		password := os.Getenv("SEED_PASSWORD")
		if email == "" {
			email = "admin@khetconnect.xyz"
		}
		if password == "" {
			password = "password"
		}
		if err := stubapi.Seed(db, email, password); err != nil {
			log.Fatalf("seed error: %v", err)
		}
		log.Printf("seeded operator %s", email)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	stubapi.Register(e, &stubapi.Handler{DB: db, JWTSecret: []byte(secret)})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("khetapi stub listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
