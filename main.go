// @title Medical Assistant Backend API
// @version 1.0
// @description Backend that answers free-text health questions with structured, non-diagnostic medical information generated by an LLM.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @basePath /
// @schemes http https

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/Huzaifa-dev-Og/docmed-ai/docs"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/api"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/config"
	"github.com/Huzaifa-dev-Og/docmed-ai/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Medical Assistant Backend on port %d", cfg.Port)

	// Initialize OpenAI service
	openaiService := service.NewOpenAIService(cfg)

	// Setup router
	router := api.Router(cfg, openaiService)

	// Start server in a goroutine
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Medical Assistant Backend running on %s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down Medical Assistant Backend...")
}
