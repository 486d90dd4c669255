package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/auth"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/config"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/database"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/handlers"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/mailer"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/progress"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/routes"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/store"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to MongoDB; a store-connection failure at startup is fatal
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Build the store handles and the reconciliation core; everything is
	// injected at construction time, no package-level client
	userStore := store.NewUserStore(client, cfg.DatabaseName)
	courseStore := store.NewCourseStore(client, cfg.DatabaseName)
	reconciler := progress.NewReconciler(userStore)
	sessions := auth.New(cfg.JWTSecret)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	userHandler := handlers.NewUserHandler(userStore, reconciler, sessions, mail)
	courseHandler := handlers.NewCourseHandler(courseStore)
	certHandler := handlers.NewCertificateHandler()

	router := routes.SetupRouter(userHandler, courseHandler, certHandler, sessions)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Stop serving and close the Mongo connection on shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect from MongoDB: %v", err)
	}
	log.Print("MongoDB connection closed")
}
