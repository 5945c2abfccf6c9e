package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/tonies-catalog/api"
	"github.com/raushankrgupta/tonies-catalog/config"
	"github.com/raushankrgupta/tonies-catalog/scrapers/base"
	"github.com/raushankrgupta/tonies-catalog/store"
	"github.com/raushankrgupta/tonies-catalog/utils"
)

func main() {
	config.LoadConfig()
	base.ChromeDriverPath = config.ChromeDriverPath

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := utils.InitS3(); err != nil {
		log.Printf("S3 unavailable, image uploads will fail: %v", err)
	}

	if config.JWTSecret == "" || config.AdminEmail == "" || config.AdminPasswordHash == "" {
		log.Println("JWT_SECRET, ADMIN_EMAIL or ADMIN_PASSWORD_HASH missing, admin routes are unusable")
	}

	tonies := store.NewTonieStore(utils.GetCollection(store.CollectionName))
	server := api.NewServer(tonies, config.FetchTimeout)

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: server.Routes(),
	}

	go func() {
		fmt.Printf("Server starting on port %s...\n", config.Port)
		fmt.Printf("Usage: curl \"http://localhost:%s/tonies\"\n", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if err := utils.DisconnectMongo(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	fmt.Println("Server stopped")
}
