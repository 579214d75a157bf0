package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/assistant"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/graph"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/usecase"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/conf"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/data"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Clients
	assistantClient := assistant.NewClient(
		config.OpenAI.APIKey,
		config.OpenAI.Model,
		config.OpenAI.BaseURL,
		config.Timeout,
	)
	graphClient := graph.NewClient(config.Graph.AccessToken, config.Graph.APIVersion)

	// Repositories
	replyRepo := data.NewAssistantRepo(assistantClient)
	deliveryRepo := data.NewGraphRepo(graphClient)

	// Conversation pipeline
	convUC := usecase.NewConversationUsecase(
		replyRepo,
		deliveryRepo,
		config.Prompts.BuildSystemPrompt(config.Salon),
		config.Prompts.FallbackReply(config.Salon),
	)

	srv := server.NewWebhookServer(convUC, config.Webhook, config.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		if err := srv.Stop(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		os.Exit(0)
	}()

	fmt.Printf("Starting %s DM assistant...\n", config.Salon.Name)
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
