package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beauty-parlour-api/internal/client"
	"beauty-parlour-api/internal/config"
	"beauty-parlour-api/internal/email"
	"beauty-parlour-api/internal/repository"
	"beauty-parlour-api/internal/server"
	"beauty-parlour-api/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.Razorpay.KeySecret == "" {
		log.Fatal("RAZORPAY_KEY_SECRET must be set")
	}

	db := client.InitSqliteClient(cfg.DatabasePath)
	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)
	mailer := email.NewMailer(&cfg.SMTP)

	userRepo := repository.NewUserRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	contentRepo := repository.NewContentRepository(db)

	userService := service.NewUserService(userRepo, &cfg.JWT)
	paymentService := service.NewPaymentService(razorpayClient, userRepo, mailer, cfg)
	appointmentService := service.NewAppointmentService(appointmentRepo, mailer, cfg.OwnerEmail)
	contentService := service.NewContentService(contentRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, userRepo, userService, paymentService, appointmentService, contentService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
